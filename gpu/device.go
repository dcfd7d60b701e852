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
	"errors"
	"fmt"
)

// Kind is the category of a GPU object. Each Kind has its own binding slot.
type Kind int

// List of valid Kind values.
const (
	KindTexture1D Kind = iota
	KindTexture2D
	KindFramebuffer
)

func (k Kind) String() string {
	switch k {
	case KindTexture1D:
		return "texture1D"
	case KindTexture2D:
		return "texture2D"
	case KindFramebuffer:
		return "framebuffer"
	}
	return fmt.Sprintf("unknown kind (%d)", int(k))
}

// IsTexture returns true if the Kind is one of the texture kinds.
func (k Kind) IsTexture() bool {
	return k == KindTexture1D || k == KindTexture2D
}

// TextureFormat describes the layout of texture image data.
type TextureFormat int

// List of valid TextureFormat values.
const (
	// 8 bits per channel RGBA
	FormatColorRGBA TextureFormat = iota

	// 24 bit depth and 8 bit stencil packed into 32 bits
	FormatDepthStencil
)

func (f TextureFormat) String() string {
	switch f {
	case FormatColorRGBA:
		return "RGBA"
	case FormatDepthStencil:
		return "depth/stencil"
	}
	return fmt.Sprintf("unknown format (%d)", int(f))
}

// BytesPerPixel returns the size of a single pixel in the format.
func (f TextureFormat) BytesPerPixel() int {
	return 4
}

// Check returns ErrUnknownFormat if the format is not a valid value.
func (f TextureFormat) Check() error {
	switch f {
	case FormatColorRGBA, FormatDepthStencil:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
}

// TextureFilter is the filter used when sampling a texture.
type TextureFilter int

// List of valid TextureFilter values.
const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

func (f TextureFilter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	}
	return fmt.Sprintf("unknown filter (%d)", int(f))
}

// Check returns ErrUnknownFilter if the filter is not a valid value.
func (f TextureFilter) Check() error {
	switch f {
	case FilterNearest, FilterLinear:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
}

// Sentinel errors returned for invalid enumeration values. These are always
// errors and are never passed on to the device.
var (
	ErrUnknownFormat = errors.New("unknown texture format")
	ErrUnknownFilter = errors.New("unknown texture filter")
)

// Capabilities of the device that are relevant to the backbuffer.
type Capabilities struct {
	Framebuffers bool
	Major        int
	Minor        int
	Vendor       string
	Renderer     string
}

func (c Capabilities) String() string {
	return fmt.Sprintf("%s %s (%d.%d)", c.Vendor, c.Renderer, c.Major, c.Minor)
}

// Device is the interface to the GPU. Implementations are not expected to be
// safe for concurrent use. All calls must come from the render thread.
//
// Texture operations act on the texture bound to the Kind slot of the active
// texture unit. Framebuffer operations act on the bound framebuffer.
type Device interface {
	// object management
	Generate(kind Kind) uint32
	Delete(kind Kind, id uint32)
	Bind(kind Kind, id uint32)
	Bound(kind Kind) uint32

	// IsObject returns true if id names an object of the kind that has not
	// been deleted
	IsObject(kind Kind, id uint32) bool

	ActiveTexture(unit int)

	// bound texture
	TexImage(kind Kind, format TextureFormat, width int32, height int32, data []byte) error
	TexFilter(kind Kind, filter TextureFilter) error
	TexSize(kind Kind) (int32, int32)

	// TexPixels copies the bound texture into dst as BGRA in the texture's
	// row order (bottom row first)
	TexPixels(kind Kind, dst []byte)

	// DrawQuad draws the 2D texture bound to unit zero into the bound
	// framebuffer. A negative dimension flips the texture on that axis
	DrawQuad(width int32, height int32)

	// bound framebuffer
	AttachColor(texture uint32)
	AttachDepthStencil(texture uint32)
	FramebufferComplete() bool
	Clear()
	Viewport(x int32, y int32, width int32, height int32)

	// ReadPixels copies the color of the bound framebuffer into dst as RGB,
	// bottom row first
	ReadPixels(width int32, height int32, dst []byte)

	// shader programs
	CompileProgram(vertex string, fragment string) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformInt(program uint32, name string, v int32)
	UniformVec2(program uint32, name string, x float32, y float32)

	Capabilities() Capabilities
}
