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

package gpu

import (
	"fmt"

	"github.com/macdoom/backbuffer/screenshot"
)

// Texture is a one or two dimensional texture. Textures use the NoRelease
// policy: a texture stays bound after use until something else is bound in
// its place.
type Texture struct {
	*Resource

	width  int32
	height int32
	format TextureFormat
}

// NewTexture allocates a new texture. The kind must be KindTexture1D or
// KindTexture2D.
func NewTexture(dev Device, kind Kind) (*Texture, error) {
	if !kind.IsTexture() {
		return nil, fmt.Errorf("gpu: %s is not a texture kind", kind)
	}
	return &Texture{
		Resource: NewResource(dev, kind, NoRelease),
	}, nil
}

// SetImageData allocates storage for the texture and optionally fills it
// with data. The height is ignored for one dimensional textures.
func (tex *Texture) SetImageData(format TextureFormat, width int32, height int32, data []byte) error {
	if err := format.Check(); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}

	if tex.kind == KindTexture1D {
		height = 1
	}

	if data != nil && len(data) < int(width)*int(height)*format.BytesPerPixel() {
		return fmt.Errorf("gpu: image data too short for %dx%d %s", width, height, format)
	}

	tex.Acquire()
	defer tex.Release()

	if err := tex.dev.TexImage(tex.kind, format, width, height, data); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}

	tex.width = width
	tex.height = height
	tex.format = format

	return nil
}

// SetFilter sets the minification and magnification filter. Texture
// coordinates are clamped to the edge.
func (tex *Texture) SetFilter(filter TextureFilter) error {
	if err := filter.Check(); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}

	tex.Acquire()
	defer tex.Release()

	if err := tex.dev.TexFilter(tex.kind, filter); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}

	return nil
}

// Size returns the dimensions last given to SetImageData().
func (tex *Texture) Size() (int32, int32) {
	return tex.width, tex.height
}

// Format returns the format last given to SetImageData().
func (tex *Texture) Format() TextureFormat {
	return tex.format
}

// Draw2D draws the texture as a quad covering width by height pixels of the
// current viewport. A negative dimension flips the image on that axis.
func (tex *Texture) Draw2D(width int32, height int32) {
	tex.Acquire()
	defer tex.Release()
	tex.dev.DrawQuad(width, height)
}

// SaveAsPNG writes the contents of the texture to a PNG file. No file is
// created if the path is empty or if the texture has a zero dimension.
func (tex *Texture) SaveAsPNG(path string) error {
	if path == "" {
		return screenshot.ErrNoPath
	}

	tex.Acquire()
	defer tex.Release()

	width, height := tex.dev.TexSize(tex.kind)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", screenshot.ErrEmptyImage, width, height)
	}

	pixels := make([]byte, int(width)*int(height)*4)
	tex.dev.TexPixels(tex.kind, pixels)

	return screenshot.SavePNG(path, int(width), int(height), pixels)
}
