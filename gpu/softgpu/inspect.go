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

package softgpu

import "github.com/macdoom/backbuffer/gpu"

// Alive returns true if the object exists.
func (dev *Device) Alive(kind gpu.Kind, id uint32) bool {
	if kind == gpu.KindFramebuffer {
		_, ok := dev.framebuffers[id]
		return ok
	}
	tex, ok := dev.textures[id]
	return ok && tex.kind == kind
}

// Count returns the number of live objects of the kind.
func (dev *Device) Count(kind gpu.Kind) int {
	if kind == gpu.KindFramebuffer {
		return len(dev.framebuffers)
	}
	var n int
	for _, tex := range dev.textures {
		if tex.kind == kind {
			n++
		}
	}
	return n
}

// CountFormat returns the number of live textures with the format.
func (dev *Device) CountFormat(format gpu.TextureFormat) int {
	var n int
	for _, tex := range dev.textures {
		if tex.format == format && tex.data != nil {
			n++
		}
	}
	return n
}

// Attachments returns the color and depth/stencil attachments of a
// framebuffer.
func (dev *Device) Attachments(fb uint32) (uint32, uint32) {
	if f, ok := dev.framebuffers[fb]; ok {
		return f.color, f.depthStencil
	}
	return 0, 0
}

// Filter returns the filter of a texture.
func (dev *Device) Filter(tex uint32) gpu.TextureFilter {
	if t, ok := dev.textures[tex]; ok {
		return t.filter
	}
	return gpu.FilterNearest
}

// TextureData returns the RGBA contents of a texture, bottom row first.
func (dev *Device) TextureData(tex uint32) []byte {
	if t, ok := dev.textures[tex]; ok {
		return t.data
	}
	return nil
}

// WindowData returns the RGBA contents of the default framebuffer.
func (dev *Device) WindowData() []byte {
	return dev.window.data
}

// Programs returns the number of live shader programs.
func (dev *Device) Programs() int {
	return len(dev.programs)
}

// Program returns the program in use.
func (dev *Device) Program() uint32 {
	return dev.program
}

// Uniform returns the value last set for the uniform. The bool is false if
// the uniform has never been set.
func (dev *Device) Uniform(program uint32, name string) ([]float32, bool) {
	u, ok := dev.programs[program]
	if !ok {
		return nil, false
	}
	v, ok := u[name]
	return v, ok
}

// Draws returns the list of draws since the last call to ResetDraws().
func (dev *Device) Draws() []Draw {
	return dev.draws
}

// ResetDraws forgets the list of draws and clears.
func (dev *Device) ResetDraws() {
	dev.draws = dev.draws[:0]
	clear(dev.clears)
}

// Clears returns the number of times the framebuffer has been cleared.
func (dev *Device) Clears(fb uint32) int {
	return dev.clears[fb]
}

// ActiveUnit returns the active texture unit.
func (dev *Device) ActiveUnit() int {
	return dev.activeUnit
}

// BoundOnUnit returns the object bound to a texture kind on the unit.
func (dev *Device) BoundOnUnit(kind gpu.Kind, unit int) uint32 {
	return dev.bindings[slot{kind: kind, unit: unit}]
}
