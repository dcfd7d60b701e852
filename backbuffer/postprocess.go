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

package backbuffer

import (
	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/shaders"
)

// postProcess owns the resources for the anti-aliasing pass.
type postProcess struct {
	level   int
	target  *gpu.RenderTarget
	program *shaders.Program
}

// newPostProcess creates a render target of the same size as main, sharing
// the depth/stencil texture of main.
func newPostProcess(dev gpu.Device, main *gpu.RenderTarget, level int) (*postProcess, error) {
	w, h := main.Dimensions()

	target, err := gpu.NewRenderTarget(dev, w, h, main)
	if err != nil {
		return nil, err
	}

	program, err := shaders.NewProgram(dev, "fxaa", shaders.MainVertexShader, shaders.FXAAShader)
	if err != nil {
		target.Destroy()
		return nil, err
	}

	program.Bind()
	program.SetInt("backbuffer", unitBackbuffer)
	program.SetVec2("texelSize", 1.0/float32(w), 1.0/float32(h))
	program.Unbind()

	return &postProcess{
		level:   level,
		target:  target,
		program: program,
	}, nil
}

func (pp *postProcess) destroy() {
	pp.program.Destroy()
	pp.target.Destroy()
}

// process draws the color texture of main into the post-process target with
// the anti-aliasing shader and returns the result. The framebuffer binding
// is unchanged on return.
func (pp *postProcess) process(dev gpu.Device, main *gpu.RenderTarget) *gpu.Texture {
	pp.target.Acquire()
	defer pp.target.Release()

	w, h := main.Dimensions()
	dev.Viewport(0, 0, w, h)

	dev.ActiveTexture(unitBackbuffer)

	pp.program.Bind()
	pp.program.SetInt("quality", int32(pp.level))
	main.ColorTexture().Draw2D(w, h)
	pp.program.Unbind()

	return pp.target.ColorTexture()
}
