// This file is part of Backbuffer.
//
// Backbuffer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Backbuffer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Backbuffer.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/macdoom/backbuffer/screenshot"
)

// Video is a chained digest of screenshot buffers. The hash of each frame
// includes the hash of the previous frame.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames returns the number of frames added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the buffer to the digest. Only the visible width of each row is
// used, so the pitch of the buffer does not affect the hash.
func (dig *Video) Frame(buf screenshot.Buffer) error {
	bpp := buf.Layout.BytesPerPixel()
	row := buf.Width * bpp
	if buf.Width < 0 || buf.Height < 0 || buf.Pitch < row {
		return fmt.Errorf("digest: malformed buffer (%dx%d pitch %d)", buf.Width, buf.Height, buf.Pitch)
	}
	if len(buf.Pixels) < buf.Pitch*(buf.Height-1)+row {
		return fmt.Errorf("digest: buffer too short for %dx%d", buf.Width, buf.Height)
	}

	// room for the previous digest followed by the visible pixels
	l := len(dig.digest) + row*buf.Height
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	n := copy(dig.pixels, dig.digest[:])
	for y := 0; y < buf.Height; y++ {
		n += copy(dig.pixels[n:], buf.Pixels[y*buf.Pitch:y*buf.Pitch+row])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
	return nil
}
