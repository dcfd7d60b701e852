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
	"fmt"
	"time"

	"github.com/macdoom/backbuffer/gamma"
	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/screenshot"
	"github.com/macdoom/backbuffer/shaders"
	"github.com/macdoom/backbuffer/vsync"
)

// texture units used by the gamma correction shader
const (
	unitBackbuffer = 0
	unitGammaTable = 1
)

// BackBuffer is the presentation context.
type BackBuffer struct {
	dev   gpu.Device
	host  Host
	prefs *Preferences

	width  int32
	height int32

	target *gpu.RenderTarget

	gamma        *gamma.Table
	gammaTexture *gpu.Texture
	gammaProgram *shaders.Program

	// nil if post-processing is disabled
	post *postProcess

	smooth bool

	vsync *vsync.Controller
	clock func() time.Time

	// number of outstanding calls to Lock()
	locks int

	// render target was acquired by the outermost Lock()
	acquired bool

	// the area of the window that the render target is presented in
	presentation Rect

	// the window should be cleared before the next presentation
	dirty bool
}

// New creates the backbuffer for a window of width by height pixels. The
// device must support framebuffer objects.
//
// The preferences are applied immediately and subsequent changes to them are
// forwarded to the new backbuffer until it is destroyed.
func New(dev gpu.Device, host Host, sw vsync.Switch, p *Preferences, width int32, height int32) (*BackBuffer, error) {
	if err := gpu.CheckCapabilities(dev, 0, 0); err != nil {
		return nil, err
	}

	if p.bb != nil {
		return nil, fmt.Errorf("backbuffer: preferences already in use by another backbuffer")
	}

	bb := &BackBuffer{
		dev:    dev,
		host:   host,
		prefs:  p,
		width:  width,
		height: height,
		gamma:  gamma.NewTable(),
		vsync:  vsync.NewController(sw),
		clock:  time.Now,
		presentation: Rect{
			Width:  width,
			Height: height,
		},
		dirty: true,
	}

	var err error

	bb.target, err = gpu.NewRenderTarget(dev, width, height, nil)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}

	bb.gammaTexture, err = gpu.NewTexture(dev, gpu.KindTexture1D)
	if err != nil {
		bb.Destroy()
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = bb.gammaTexture.SetFilter(gpu.FilterNearest)
	if err != nil {
		bb.Destroy()
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = bb.uploadGamma()
	if err != nil {
		bb.Destroy()
		return nil, err
	}

	bb.gammaProgram, err = shaders.NewProgram(dev, "gamma correction", shaders.MainVertexShader, shaders.GammaCorrectionShader)
	if err != nil {
		bb.Destroy()
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	bb.gammaProgram.Bind()
	bb.gammaProgram.SetInt("backbuffer", unitBackbuffer)
	bb.gammaProgram.SetInt("gammaTable", unitGammaTable)
	bb.gammaProgram.Unbind()

	bb.target.Clear()

	bb.SetSmoothPicture(p.Smooth.Get().(bool))
	err = bb.SetPostProcess(p.PostProcess.Get().(int))
	if err != nil {
		bb.Destroy()
		return nil, err
	}

	p.bb = bb

	logger.Logf(logger.Allow, "backbuffer", "created %dx%d backbuffer on %s", width, height, dev.Capabilities())

	return bb, nil
}

// Destroy releases all GPU resources in the reverse order of creation. The
// BackBuffer must not be used after this.
func (bb *BackBuffer) Destroy() {
	if bb.prefs != nil && bb.prefs.bb == bb {
		bb.prefs.bb = nil
	}

	if bb.post != nil {
		bb.post.destroy()
		bb.post = nil
	}

	if bb.gammaProgram != nil {
		bb.gammaProgram.Destroy()
	}

	if bb.gammaTexture != nil {
		bb.gammaTexture.Destroy()
	}

	if bb.target != nil {
		if bb.acquired {
			bb.target.Release()
			bb.acquired = false
		}
		bb.target.Destroy()
	}
}

// SetClock changes the source of frame timestamps used by the vsync
// controller. The default is time.Now().
func (bb *BackBuffer) SetClock(clock func() time.Time) {
	bb.clock = clock
}

// Dimensions returns the size of the render target.
func (bb *BackBuffer) Dimensions() (int32, int32) {
	return bb.width, bb.height
}

// Target returns the render target that the host draws into.
func (bb *BackBuffer) Target() *gpu.RenderTarget {
	return bb.target
}

// VSync returns the vsync controller.
func (bb *BackBuffer) VSync() *vsync.Controller {
	return bb.vsync
}

// Lock the host for drawing. The outermost Lock() directs drawing into the
// render target.
func (bb *BackBuffer) Lock(buffered bool) bool {
	if bb.locks == 0 && !bb.acquired {
		bb.target.Acquire()
		bb.acquired = true
	}
	bb.locks++
	return bb.host.Lock(buffered)
}

// Unlock the host. When the last lock is removed the render target is
// released, if it has not already been released by Update().
func (bb *BackBuffer) Unlock() {
	if bb.locks > 0 {
		bb.locks--
	}
	if bb.locks == 0 && bb.acquired {
		bb.target.Release()
		bb.acquired = false
	}
	bb.host.Unlock()
}

// Update presents the frame drawn since Lock() and unlocks. It returns false
// if the host could not present the frame, in which case the lock is still
// held and the caller must Unlock().
func (bb *BackBuffer) Update() bool {
	if !bb.host.CanUpdate() {
		bb.host.Flush()
		return false
	}

	bb.host.DrawOverlay()
	bb.host.Flush()

	src := bb.target.ColorTexture()
	if bb.post != nil {
		src = bb.post.process(bb.dev, bb.target)
	}

	bb.drawRenderTarget(src)

	bb.vsync.Update(bb.prefs.VSyncSettings(), bb.host.Activity().Running(), bb.clock())

	bb.host.Swap()
	bb.Unlock()

	return true
}

// drawRenderTarget composites the texture into the window through the gamma
// correction shader.
func (bb *BackBuffer) drawRenderTarget(src *gpu.Texture) {
	if bb.acquired {
		bb.target.Release()
		bb.acquired = false
	}

	bb.dev.ActiveTexture(unitBackbuffer)
	src.Acquire()
	bb.dev.ActiveTexture(unitGammaTable)
	bb.gammaTexture.Acquire()
	bb.dev.ActiveTexture(unitBackbuffer)

	if bb.dirty {
		bb.dev.Clear()
		bb.dirty = false
	}

	r := bb.presentation
	bb.dev.Viewport(r.X, r.Y, r.Width, r.Height)

	bb.gammaProgram.Bind()
	src.Draw2D(bb.width, bb.height)
	bb.gammaProgram.Unbind()

	bb.dev.Viewport(0, 0, bb.width, bb.height)
}

// ScreenshotBuffer returns the contents of the render target. It must only
// be called between frames.
func (bb *BackBuffer) ScreenshotBuffer() screenshot.Buffer {
	bb.target.Acquire()
	defer bb.target.Release()

	w := int(bb.width)
	h := int(bb.height)
	pitch := w * screenshot.LayoutRGB.BytesPerPixel()

	raw := make([]byte, pitch*h)
	bb.dev.ReadPixels(bb.width, bb.height, raw)

	// rows are returned bottom-up by the device
	pixels := make([]byte, len(raw))
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:(y+1)*pitch], raw[(h-1-y)*pitch:(h-y)*pitch])
	}

	return screenshot.Buffer{
		Pixels: pixels,
		Pitch:  pitch,
		Width:  w,
		Height: h,
		Layout: screenshot.LayoutRGB,
	}
}

// SaveScreenshot writes the render target to a PNG file. It returns false
// if no file was written. The reason is logged.
func (bb *BackBuffer) SaveScreenshot(path string) bool {
	bb.dev.ActiveTexture(unitBackbuffer)
	err := bb.target.ColorTexture().SaveAsPNG(path)
	if err != nil {
		logger.Logf(logger.Allow, "backbuffer", "screenshot: %v", err)
		return false
	}
	return true
}

// GammaRamp returns the gamma table as three 16 bit ramps.
func (bb *BackBuffer) GammaRamp() (r [gamma.Size]uint16, g [gamma.Size]uint16, b [gamma.Size]uint16) {
	return bb.gamma.Ramp()
}

// SetGammaRamp replaces the gamma table. Only the high byte of each value
// is used.
func (bb *BackBuffer) SetGammaRamp(r *[gamma.Size]uint16, g *[gamma.Size]uint16, b *[gamma.Size]uint16) error {
	bb.gamma.SetRamp(r, g, b)
	return bb.uploadGamma()
}

func (bb *BackBuffer) uploadGamma() error {
	err := bb.gammaTexture.SetImageData(gpu.FormatColorRGBA, gamma.Size, 1, bb.gamma.Pixels())
	if err != nil {
		return fmt.Errorf("backbuffer: gamma: %w", err)
	}
	return nil
}

// SetSmoothPicture selects linear or nearest filtering for the presented
// image.
func (bb *BackBuffer) SetSmoothPicture(smooth bool) {
	bb.smooth = smooth

	filter := gpu.FilterNearest
	if smooth {
		filter = gpu.FilterLinear
	}

	if err := bb.target.ColorTexture().SetFilter(filter); err != nil {
		logger.Log(logger.Allow, "backbuffer", err)
	}
	if bb.post != nil {
		if err := bb.post.target.ColorTexture().SetFilter(filter); err != nil {
			logger.Log(logger.Allow, "backbuffer", err)
		}
	}
}

// SetPostProcess changes the post-process level. Zero disables
// post-processing and frees the resources it uses.
func (bb *BackBuffer) SetPostProcess(level int) error {
	if level < PostProcessOff || level > PostProcessFXAAHigh {
		return fmt.Errorf("backbuffer: unsupported post-process level %d", level)
	}

	if level == PostProcessOff {
		if bb.post != nil {
			bb.post.destroy()
			bb.post = nil
			logger.Log(logger.Allow, "backbuffer", "post-process disabled")
		}
		return nil
	}

	if bb.post != nil {
		bb.post.level = level
		return nil
	}

	post, err := newPostProcess(bb.dev, bb.target, level)
	if err != nil {
		return fmt.Errorf("backbuffer: %w", err)
	}
	bb.post = post
	bb.SetSmoothPicture(bb.smooth)

	logger.Logf(logger.Allow, "backbuffer", "post-process enabled (level %d)", level)

	return nil
}

// PostProcess returns the current post-process level.
func (bb *BackBuffer) PostProcess() int {
	if bb.post == nil {
		return PostProcessOff
	}
	return bb.post.level
}
