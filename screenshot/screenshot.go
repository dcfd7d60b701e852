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

// Package screenshot describes captured pixel buffers and writes them to PNG
// files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/macdoom/backbuffer/logger"
)

// Layout is the order of color channels in a Buffer.
type Layout int

// List of valid Layout values.
const (
	LayoutRGB Layout = iota
	LayoutRGBA
	LayoutBGRA
)

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutRGBA:
		return "RGBA"
	case LayoutBGRA:
		return "BGRA"
	}
	return fmt.Sprintf("unknown layout (%d)", int(l))
}

// BytesPerPixel returns the number of bytes used by a single pixel.
func (l Layout) BytesPerPixel() int {
	if l == LayoutRGB {
		return 3
	}
	return 4
}

// Buffer is a captured image. Rows are top-down and Pitch is the number of
// bytes between the start of one row and the next.
type Buffer struct {
	Pixels []byte
	Pitch  int
	Width  int
	Height int
	Layout Layout
}

// Sentinel errors returned by SavePNG(). In both cases no file is created.
var (
	ErrNoPath     = errors.New("no path for screenshot")
	ErrEmptyImage = errors.New("screenshot image is empty")
)

// SavePNG writes BGRA pixel data to a PNG file at path. The rows of the
// pixel data are bottom-up, as returned by the GPU, and are flipped before
// encoding.
func SavePNG(path string, width int, height int, bgra []byte) error {
	if path == "" {
		return ErrNoPath
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	if len(bgra) < width*height*4 {
		return fmt.Errorf("screenshot: pixel data too short for %dx%d image", width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height*4; i += 4 {
		img.Pix[i] = bgra[i+2]
		img.Pix[i+1] = bgra[i+1]
		img.Pix[i+2] = bgra[i]
		img.Pix[i+3] = bgra[i+3]
	}
	flipped := imaging.FlipV(img)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	err = imaging.Encode(f, flipped, imaging.PNG)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return nil
}
