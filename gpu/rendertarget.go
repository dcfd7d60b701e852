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

	"github.com/macdoom/backbuffer/logger"
)

// RenderTarget is an off-screen destination for drawing. It owns a color
// texture and either owns a depth/stencil texture or borrows the
// depth/stencil texture of another RenderTarget.
//
// Binding of the RenderTarget uses the ReleaseToPrevious policy so that
// nested use of render targets composes correctly.
type RenderTarget struct {
	fbo          *Resource
	color        *Texture
	depthStencil *Texture

	// the render target that owns the depth/stencil texture. nil if this
	// render target is the owner
	lender *RenderTarget

	// number of render targets borrowing the depth/stencil texture
	borrowers int

	width  int32
	height int32
}

// NewRenderTarget creates a render target of the specified size. If shared
// is not nil then the depth/stencil texture of the shared render target is
// used rather than allocating a new one. The shared render target must be of
// the same size and must outlive the new render target.
//
// The framebuffer binding in effect before the call is in effect after the
// call.
func NewRenderTarget(dev Device, width int32, height int32, shared *RenderTarget) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gpu: invalid render target size %dx%d", width, height)
	}

	if shared != nil {
		if shared.fbo.ID() == 0 {
			return nil, fmt.Errorf("gpu: shared render target has been destroyed")
		}
		if shared.width != width || shared.height != height {
			return nil, fmt.Errorf("gpu: shared render target is %dx%d not %dx%d", shared.width, shared.height, width, height)
		}
	}

	rt := &RenderTarget{
		width:  width,
		height: height,
	}

	var err error

	rt.color, err = NewTexture(dev, KindTexture2D)
	if err != nil {
		return nil, err
	}
	err = rt.color.SetImageData(FormatColorRGBA, width, height, nil)
	if err != nil {
		rt.color.Destroy()
		return nil, err
	}
	err = rt.color.SetFilter(FilterNearest)
	if err != nil {
		rt.color.Destroy()
		return nil, err
	}

	if shared != nil {
		rt.depthStencil = shared.depthStencil
		rt.lender = shared
		shared.borrowers++
	} else {
		rt.depthStencil, err = NewTexture(dev, KindTexture2D)
		if err != nil {
			rt.color.Destroy()
			return nil, err
		}
		err = rt.depthStencil.SetImageData(FormatDepthStencil, width, height, nil)
		if err == nil {
			err = rt.depthStencil.SetFilter(FilterNearest)
		}
		if err != nil {
			rt.depthStencil.Destroy()
			rt.color.Destroy()
			return nil, err
		}
	}

	rt.fbo = NewResource(dev, KindFramebuffer, ReleaseToPrevious)
	rt.fbo.Acquire()
	dev.AttachColor(rt.color.ID())
	dev.AttachDepthStencil(rt.depthStencil.ID())
	complete := dev.FramebufferComplete()
	rt.fbo.Release()

	if !complete {
		rt.Destroy()
		return nil, fmt.Errorf("gpu: framebuffer for %dx%d render target is incomplete", width, height)
	}

	return rt, nil
}

func (rt *RenderTarget) String() string {
	return fmt.Sprintf("render target %d (%dx%d)", rt.fbo.ID(), rt.width, rt.height)
}

// Acquire directs subsequent drawing into the render target.
func (rt *RenderTarget) Acquire() {
	rt.fbo.Acquire()
}

// Release restores the framebuffer that was bound before the matching
// Acquire().
func (rt *RenderTarget) Release() {
	rt.fbo.Release()
}

// Active returns true if the render target is the current framebuffer.
func (rt *RenderTarget) Active() bool {
	return rt.fbo.Active()
}

// ID returns the framebuffer handle.
func (rt *RenderTarget) ID() uint32 {
	return rt.fbo.ID()
}

// Dimensions returns the width and height of the render target.
func (rt *RenderTarget) Dimensions() (int32, int32) {
	return rt.width, rt.height
}

// ColorTexture returns the color attachment, for compositing into another
// framebuffer.
func (rt *RenderTarget) ColorTexture() *Texture {
	return rt.color
}

// DepthStencilTexture returns the depth/stencil attachment. The texture may
// be owned by another render target.
func (rt *RenderTarget) DepthStencilTexture() *Texture {
	return rt.depthStencil
}

// OwnsDepthStencil returns true if the depth/stencil texture belongs to this
// render target.
func (rt *RenderTarget) OwnsDepthStencil() bool {
	return rt.lender == nil
}

// Clear the color of the render target to black.
func (rt *RenderTarget) Clear() {
	rt.Acquire()
	defer rt.Release()
	rt.fbo.dev.Clear()
}

// Destroy the render target. A borrowed depth/stencil texture is left
// untouched. It is safe to call Destroy() more than once.
func (rt *RenderTarget) Destroy() {
	if rt.fbo != nil {
		rt.fbo.Destroy()
	}

	if rt.color != nil {
		rt.color.Destroy()
	}

	if rt.lender != nil {
		rt.lender.borrowers--
		rt.lender = nil
		rt.depthStencil = nil
		return
	}

	if rt.depthStencil != nil {
		if rt.borrowers > 0 {
			logger.Logf(logger.Allow, "gpu", "depth/stencil texture destroyed while still shared by %d render target(s)", rt.borrowers)
		}
		rt.depthStencil.Destroy()
	}
}
