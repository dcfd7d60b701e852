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

// Package softgpu is an in-memory implementation of gpu.Device. It keeps
// enough state to check the binding behaviour of the gpu package and to
// produce real pixel data for screenshots, without a graphics context.
package softgpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/macdoom/backbuffer/gpu"
)

type texture struct {
	kind   gpu.Kind
	format gpu.TextureFormat
	filter gpu.TextureFilter
	width  int32
	height int32

	// RGBA, bottom row first
	data []byte
}

type framebuffer struct {
	color        uint32
	depthStencil uint32
}

type slot struct {
	kind gpu.Kind
	unit int
}

// Draw is a record of a single call to DrawQuad().
type Draw struct {
	Program     uint32
	Framebuffer uint32
	Texture     uint32
	Viewport    [4]int32
	Width       int32
	Height      int32
}

// Device implements the gpu.Device interface.
type Device struct {
	// capabilities returned by Capabilities(). can be changed before use
	Caps gpu.Capabilities

	// if true then FramebufferComplete() always returns false
	FailFramebuffers bool

	nextID       uint32
	textures     map[uint32]*texture
	framebuffers map[uint32]*framebuffer
	programs     map[uint32]map[string][]float32

	bindings   map[slot]uint32
	activeUnit int
	program    uint32
	viewport   [4]int32

	// color buffer of the default framebuffer
	window texture

	draws  []Draw
	clears map[uint32]int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The width and height are the size of the default framebuffer.
func NewDevice(width int32, height int32) *Device {
	dev := &Device{
		Caps: gpu.Capabilities{
			Framebuffers: true,
			Major:        2,
			Minor:        1,
			Vendor:       "softgpu",
			Renderer:     "in-memory",
		},
		textures:     make(map[uint32]*texture),
		framebuffers: make(map[uint32]*framebuffer),
		programs:     make(map[uint32]map[string][]float32),
		bindings:     make(map[slot]uint32),
		clears:       make(map[uint32]int),
	}
	dev.window = texture{
		kind:   gpu.KindTexture2D,
		width:  width,
		height: height,
		data:   make([]byte, int(width)*int(height)*4),
	}
	dev.viewport = [4]int32{0, 0, width, height}
	return dev
}

func (dev *Device) slotFor(kind gpu.Kind) slot {
	if kind == gpu.KindFramebuffer {
		return slot{kind: kind}
	}
	return slot{kind: kind, unit: dev.activeUnit}
}

func (dev *Device) boundTexture(kind gpu.Kind) *texture {
	return dev.textures[dev.bindings[dev.slotFor(kind)]]
}

// the color buffer of the bound framebuffer. nil if the framebuffer has no
// color attachment
func (dev *Device) target() *texture {
	fb := dev.bindings[slot{kind: gpu.KindFramebuffer}]
	if fb == 0 {
		return &dev.window
	}
	if f, ok := dev.framebuffers[fb]; ok {
		return dev.textures[f.color]
	}
	return nil
}

// Generate implements the gpu.Device interface.
func (dev *Device) Generate(kind gpu.Kind) uint32 {
	dev.nextID++
	id := dev.nextID
	switch kind {
	case gpu.KindFramebuffer:
		dev.framebuffers[id] = &framebuffer{}
	default:
		dev.textures[id] = &texture{kind: kind}
	}
	return id
}

// Delete implements the gpu.Device interface. Deleting a bound object resets
// the binding to zero.
func (dev *Device) Delete(kind gpu.Kind, id uint32) {
	if id == 0 {
		return
	}
	switch kind {
	case gpu.KindFramebuffer:
		delete(dev.framebuffers, id)
	default:
		delete(dev.textures, id)
	}
	for s, b := range dev.bindings {
		if s.kind == kind && b == id {
			dev.bindings[s] = 0
		}
	}
}

// Bind implements the gpu.Device interface.
func (dev *Device) Bind(kind gpu.Kind, id uint32) {
	dev.bindings[dev.slotFor(kind)] = id
}

// Bound implements the gpu.Device interface.
func (dev *Device) Bound(kind gpu.Kind) uint32 {
	return dev.bindings[dev.slotFor(kind)]
}

// IsObject implements the gpu.Device interface.
func (dev *Device) IsObject(kind gpu.Kind, id uint32) bool {
	if kind == gpu.KindFramebuffer {
		_, ok := dev.framebuffers[id]
		return ok
	}
	tex, ok := dev.textures[id]
	return ok && tex.kind == kind
}

// ActiveTexture implements the gpu.Device interface.
func (dev *Device) ActiveTexture(unit int) {
	dev.activeUnit = unit
}

// TexImage implements the gpu.Device interface.
func (dev *Device) TexImage(kind gpu.Kind, format gpu.TextureFormat, width int32, height int32, data []byte) error {
	if err := format.Check(); err != nil {
		return err
	}
	tex := dev.boundTexture(kind)
	if tex == nil {
		return fmt.Errorf("softgpu: no %s bound", kind)
	}
	tex.format = format
	tex.width = width
	tex.height = height
	tex.data = make([]byte, int(width)*int(height)*4)
	if data != nil {
		copy(tex.data, data)
	}
	return nil
}

// TexFilter implements the gpu.Device interface.
func (dev *Device) TexFilter(kind gpu.Kind, filter gpu.TextureFilter) error {
	if err := filter.Check(); err != nil {
		return err
	}
	tex := dev.boundTexture(kind)
	if tex == nil {
		return fmt.Errorf("softgpu: no %s bound", kind)
	}
	tex.filter = filter
	return nil
}

// TexSize implements the gpu.Device interface.
func (dev *Device) TexSize(kind gpu.Kind) (int32, int32) {
	tex := dev.boundTexture(kind)
	if tex == nil {
		return 0, 0
	}
	return tex.width, tex.height
}

// TexPixels implements the gpu.Device interface.
func (dev *Device) TexPixels(kind gpu.Kind, dst []byte) {
	tex := dev.boundTexture(kind)
	if tex == nil {
		return
	}
	for i := 0; i+3 < len(tex.data) && i+3 < len(dst); i += 4 {
		dst[i] = tex.data[i+2]
		dst[i+1] = tex.data[i+1]
		dst[i+2] = tex.data[i]
		dst[i+3] = tex.data[i+3]
	}
}

// DrawQuad implements the gpu.Device interface. The source texture is
// scaled into the viewport of the bound framebuffer with nearest neighbour
// sampling.
func (dev *Device) DrawQuad(width int32, height int32) {
	src := dev.textures[dev.bindings[slot{kind: gpu.KindTexture2D, unit: 0}]]
	fb := dev.bindings[slot{kind: gpu.KindFramebuffer}]

	d := Draw{
		Program:     dev.program,
		Framebuffer: fb,
		Texture:     dev.bindings[slot{kind: gpu.KindTexture2D, unit: 0}],
		Viewport:    dev.viewport,
		Width:       width,
		Height:      height,
	}
	dev.draws = append(dev.draws, d)

	dst := dev.target()
	if src == nil || dst == nil || src == dst || src.width == 0 || src.height == 0 {
		return
	}

	vx, vy, vw, vh := dev.viewport[0], dev.viewport[1], dev.viewport[2], dev.viewport[3]
	for y := int32(0); y < vh; y++ {
		dy := vy + y
		if dy < 0 || dy >= dst.height {
			continue
		}
		sy := y * src.height / vh
		if height < 0 {
			sy = src.height - 1 - sy
		}
		for x := int32(0); x < vw; x++ {
			dx := vx + x
			if dx < 0 || dx >= dst.width {
				continue
			}
			sx := x * src.width / vw
			if width < 0 {
				sx = src.width - 1 - sx
			}
			si := (sy*src.width + sx) * 4
			di := (dy*dst.width + dx) * 4
			copy(dst.data[di:di+4], src.data[si:si+4])
		}
	}
}

// AttachColor implements the gpu.Device interface.
func (dev *Device) AttachColor(tex uint32) {
	if f, ok := dev.framebuffers[dev.bindings[slot{kind: gpu.KindFramebuffer}]]; ok {
		f.color = tex
	}
}

// AttachDepthStencil implements the gpu.Device interface.
func (dev *Device) AttachDepthStencil(tex uint32) {
	if f, ok := dev.framebuffers[dev.bindings[slot{kind: gpu.KindFramebuffer}]]; ok {
		f.depthStencil = tex
	}
}

// FramebufferComplete implements the gpu.Device interface.
func (dev *Device) FramebufferComplete() bool {
	if dev.FailFramebuffers {
		return false
	}
	f, ok := dev.framebuffers[dev.bindings[slot{kind: gpu.KindFramebuffer}]]
	if !ok {
		return false
	}
	color, ok := dev.textures[f.color]
	if !ok || color.format != gpu.FormatColorRGBA {
		return false
	}
	if f.depthStencil != 0 {
		ds, ok := dev.textures[f.depthStencil]
		if !ok || ds.format != gpu.FormatDepthStencil {
			return false
		}
		if ds.width != color.width || ds.height != color.height {
			return false
		}
	}
	return true
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	fb := dev.bindings[slot{kind: gpu.KindFramebuffer}]
	dev.clears[fb]++
	if dst := dev.target(); dst != nil {
		clear(dst.data)
	}
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x int32, y int32, width int32, height int32) {
	dev.viewport = [4]int32{x, y, width, height}
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(width int32, height int32, dst []byte) {
	src := dev.target()
	if src == nil {
		return
	}
	for y := int32(0); y < height && y < src.height; y++ {
		for x := int32(0); x < width && x < src.width; x++ {
			si := (y*src.width + x) * 4
			di := (y*width + x) * 3
			if int(di)+3 > len(dst) {
				return
			}
			copy(dst[di:di+3], src.data[si:si+3])
		}
	}
}

// CompileProgram implements the gpu.Device interface. Compilation fails if
// either source is empty.
func (dev *Device) CompileProgram(vertex string, fragment string) (uint32, error) {
	if strings.TrimSpace(vertex) == "" {
		return 0, errors.New("softgpu: empty vertex shader")
	}
	if strings.TrimSpace(fragment) == "" {
		return 0, errors.New("softgpu: empty fragment shader")
	}
	dev.nextID++
	dev.programs[dev.nextID] = make(map[string][]float32)
	return dev.nextID, nil
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(program uint32) {
	delete(dev.programs, program)
	if dev.program == program {
		dev.program = 0
	}
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(program uint32) {
	dev.program = program
}

// UniformInt implements the gpu.Device interface.
func (dev *Device) UniformInt(program uint32, name string, v int32) {
	if u, ok := dev.programs[program]; ok {
		u[name] = []float32{float32(v)}
	}
}

// UniformVec2 implements the gpu.Device interface.
func (dev *Device) UniformVec2(program uint32, name string, x float32, y float32) {
	if u, ok := dev.programs[program]; ok {
		u[name] = []float32{x, y}
	}
}

// Capabilities implements the gpu.Device interface.
func (dev *Device) Capabilities() gpu.Capabilities {
	return dev.Caps
}
