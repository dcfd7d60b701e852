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

package shaders

import (
	"fmt"

	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/logger"
)

// Program is a compiled and linked shader program.
type Program struct {
	dev    gpu.Device
	name   string
	handle uint32
}

// NewProgram compiles and links the vertex and fragment sources. The name is
// used for logging only.
func NewProgram(dev gpu.Device, name string, vertex []byte, fragment []byte) (*Program, error) {
	handle, err := dev.CompileProgram(string(vertex), string(fragment))
	if err != nil {
		return nil, fmt.Errorf("shaders: %s: %w", name, err)
	}
	logger.Logf(logger.Allow, "shaders", "compiled %s (%d)", name, handle)
	return &Program{
		dev:    dev,
		name:   name,
		handle: handle,
	}, nil
}

func (prg *Program) String() string {
	return prg.name
}

// Handle returns the device handle for the program. Zero if the program has
// been destroyed.
func (prg *Program) Handle() uint32 {
	return prg.handle
}

// Bind makes the program current.
func (prg *Program) Bind() {
	prg.dev.UseProgram(prg.handle)
}

// Unbind returns to the fixed function pipeline.
func (prg *Program) Unbind() {
	prg.dev.UseProgram(0)
}

// SetInt sets an integer or sampler uniform. The program must be bound.
func (prg *Program) SetInt(name string, v int32) {
	prg.dev.UniformInt(prg.handle, name, v)
}

// SetVec2 sets a vec2 uniform. The program must be bound.
func (prg *Program) SetVec2(name string, x float32, y float32) {
	prg.dev.UniformVec2(prg.handle, name, x, y)
}

// Destroy the program. It is safe to call Destroy() more than once.
func (prg *Program) Destroy() {
	if prg.handle == 0 {
		return
	}
	prg.dev.DeleteProgram(prg.handle)
	prg.handle = 0
}
