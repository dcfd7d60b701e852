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

package main

import (
	"time"

	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/overlay"
	"github.com/macdoom/backbuffer/vsync"
)

// demo is the host for the backbuffer. It draws an animated test pattern
// into the render target and the frame rate overlay over it.
type demo struct {
	dev gpu.Device
	sw  vsync.Switch

	width  int32
	height int32

	pattern *gpu.Texture
	pixels  []byte

	frame int

	// overlay is nil if no overlay is to be drawn
	overlay *overlay.Overlay

	// vsync state shown in the overlay. set once the backbuffer is created
	ctrl     *vsync.Controller
	settings func() vsync.Settings

	// frame timing for the overlay
	clock    func() time.Time
	lastDraw time.Time

	// platform functions. swap may be nil
	swap      func()
	canUpdate func() bool
	activity  func() vsync.Activity
}

func newDemo(dev gpu.Device, sw vsync.Switch, width int32, height int32) (*demo, error) {
	d := &demo{
		dev:       dev,
		sw:        sw,
		width:     width,
		height:    height,
		pixels:    make([]byte, int(width)*int(height)*4),
		clock:     time.Now,
		canUpdate: func() bool { return true },
		activity:  func() vsync.Activity { return vsync.Activity{} },
	}

	var err error

	d.pattern, err = gpu.NewTexture(dev, gpu.KindTexture2D)
	if err != nil {
		return nil, err
	}
	err = d.pattern.SetFilter(gpu.FilterNearest)
	if err != nil {
		d.destroy()
		return nil, err
	}

	return d, nil
}

func (d *demo) destroy() {
	if d.overlay != nil {
		d.overlay.Destroy()
		d.overlay = nil
	}
	if d.pattern != nil {
		d.pattern.Destroy()
		d.pattern = nil
	}
}

// Lock implements the backbuffer.Host interface.
func (d *demo) Lock(_ bool) bool {
	return true
}

// Unlock implements the backbuffer.Host interface.
func (d *demo) Unlock() {
}

// CanUpdate implements the backbuffer.Host interface.
func (d *demo) CanUpdate() bool {
	return d.canUpdate()
}

// DrawOverlay implements the backbuffer.Host interface.
func (d *demo) DrawOverlay() {
	if d.overlay == nil {
		return
	}

	now := d.clock()
	var dt float32
	if !d.lastDraw.IsZero() && now.After(d.lastDraw) {
		dt = float32(now.Sub(d.lastDraw).Seconds())
	}
	d.lastDraw = now

	info := overlay.Info{
		VSync: d.sw.VSync(),
	}
	if dt > 0 {
		info.FPS = 1.0 / float64(dt)
	}
	if d.settings != nil {
		info.Mode = d.settings().Mode
	}
	if d.ctrl != nil {
		info.Frame = d.ctrl.Frame()
		info.Consecutive = d.ctrl.Consecutive()
	}

	d.overlay.Draw(info, d.width, d.height, dt)
}

// Flush implements the backbuffer.Host interface.
func (d *demo) Flush() {
}

// Swap implements the backbuffer.Host interface.
func (d *demo) Swap() {
	if d.swap != nil {
		d.swap()
	}
}

// Activity implements the backbuffer.Host interface.
func (d *demo) Activity() vsync.Activity {
	return d.activity()
}

// draw the next frame of the test pattern into the bound framebuffer.
func (d *demo) draw() error {
	d.frame++

	w := int(d.width)
	h := int(d.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			d.pixels[i] = uint8(x + y + d.frame*2)
			d.pixels[i+1] = uint8(x * 255 / w)
			d.pixels[i+2] = uint8(y * 255 / h)
			d.pixels[i+3] = 0xff
		}
	}

	err := d.pattern.SetImageData(gpu.FormatColorRGBA, d.width, d.height, d.pixels)
	if err != nil {
		return err
	}

	d.dev.ActiveTexture(0)
	d.dev.Viewport(0, 0, d.width, d.height)
	d.pattern.Draw2D(d.width, d.height)

	return nil
}
