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
	"fmt"

	"github.com/macdoom/backbuffer/backbuffer"
	"github.com/macdoom/backbuffer/gamma"
	"github.com/macdoom/backbuffer/gpu/gldevice"
	"github.com/macdoom/backbuffer/limiter"
	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/modalflag"
	"github.com/macdoom/backbuffer/overlay"
	"github.com/macdoom/backbuffer/paths"
	"github.com/macdoom/backbuffer/platform"
)

// window runs the demo in an SDL window. It must be created and serviced on
// the main thread.
type window struct {
	plt  *platform.Platform
	bb   *backbuffer.BackBuffer
	demo *demo

	// limit is nil if the frame rate is not limited
	limit *limiter.FPSLimiter

	screenshot bool
}

func newWindow(p *backbuffer.Preferences, width int32, height int32, gammaValue float64, displayGamma bool, showOverlay bool) (*window, error) {
	w := &window{}

	var err error

	w.plt, err = platform.NewPlatform("", width, height)
	if err != nil {
		return nil, err
	}

	dev, err := gldevice.New()
	if err != nil {
		w.plt.Destroy()
		return nil, err
	}

	w.demo, err = newDemo(dev, w.plt, width, height)
	if err != nil {
		w.plt.Destroy()
		return nil, err
	}
	w.demo.swap = w.plt.Swap
	w.demo.canUpdate = func() bool {
		return !w.plt.Minimised()
	}
	w.demo.activity = w.plt.Activity

	w.bb, err = backbuffer.New(dev, w.demo, w.plt, p, width, height)
	if err != nil {
		w.demo.destroy()
		w.plt.Destroy()
		return nil, err
	}

	w.demo.ctrl = w.bb.VSync()
	w.demo.settings = p.VSyncSettings
	if showOverlay {
		w.demo.overlay = overlay.NewOverlay(overlay.NewGL21())
	}

	w.bb.FitPresentation(w.plt.DrawableSize())

	if displayGamma {
		if gammaValue != 1.0 {
			r, g, b := gamma.NewTableFromGamma(gammaValue).Ramp()
			err = w.plt.SetDisplayGamma(&r, &g, &b)
		}
	} else {
		err = applyGamma(w.bb, gammaValue)
	}
	if err != nil {
		w.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "run", "refresh rate %dHz", w.plt.RefreshRate())

	return w, nil
}

// Destroy implements the guiCreator interface.
func (w *window) Destroy() {
	if w.screenshot {
		pth, err := paths.ResourcePath("", paths.UniqueFilename("screenshot", "", ".png"))
		if err == nil && w.bb.SaveScreenshot(pth) {
			fmt.Printf("screenshot saved to %s\n", pth)
		}
	}
	if w.limit != nil {
		w.limit.Stop()
	}
	w.bb.Destroy()
	w.demo.destroy()
	w.plt.Destroy()
}

// Service implements the guiCreator interface.
func (w *window) Service() bool {
	running, resized := w.plt.Service()
	if !running {
		return false
	}
	if resized {
		w.bb.FitPresentation(w.plt.DrawableSize())
	}
	if w.limit != nil && !w.limit.HasWaited() {
		return true
	}

	w.bb.Lock(true)
	if err := w.demo.draw(); err != nil {
		logger.Log(logger.Allow, "run", err)
	}
	if !w.bb.Update() {
		w.bb.Unlock()
	}

	return true
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	common := addCommonFlags(md)
	displayGamma := md.AddBool("displaygamma", false, "apply gamma to the display rather than the gamma table")
	screenshot := md.AddBool("screenshot", false, "save a screenshot to the resource directory on exit")
	limit := md.AddInt("limit", 0, "limit the frame rate. zero for no limit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	end, err := common.apply()
	if err != nil {
		return err
	}
	defer end()

	pref, err := preferences()
	if err != nil {
		return err
	}

	width := int32(*common.width)
	height := int32(*common.height)

	sync.creator <- func() (guiCreator, error) {
		w, err := newWindow(pref, width, height, *common.gamma, *displayGamma, *common.overlay)
		if err != nil {
			return nil, err
		}
		w.screenshot = *screenshot
		if *limit > 0 {
			w.limit, err = limiter.NewFPSLimiter(*limit)
			if err != nil {
				w.Destroy()
				return nil, err
			}
		}
		return w, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	<-sync.guiDone

	return nil
}
