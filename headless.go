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
	"io"
	"os"
	"time"

	"github.com/macdoom/backbuffer/backbuffer"
	"github.com/macdoom/backbuffer/digest"
	"github.com/macdoom/backbuffer/gpu/softgpu"
	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/modalflag"
	"github.com/macdoom/backbuffer/overlay"
)

// headlessSwitch stands in for the display's swap interval.
type headlessSwitch struct {
	on       bool
	switches int
}

func (sw *headlessSwitch) VSync() bool {
	return sw.on
}

func (sw *headlessSwitch) SetVSync(on bool) error {
	if sw.on != on {
		sw.switches++
	}
	sw.on = on
	return nil
}

type headlessOptions struct {
	width      int32
	height     int32
	frames     int
	fps        float64
	gamma      float64
	overlay    bool
	screenshot string
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	frames := md.AddInt("frames", 120, "number of frames to render")
	fps := md.AddFloat64("fps", 60.0, "simulated frame rate")
	screenshot := md.AddString("screenshot", "", "save the final frame to a PNG file")

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

	return runHeadless(os.Stdout, pref, headlessOptions{
		width:      int32(*common.width),
		height:     int32(*common.height),
		frames:     *frames,
		fps:        *fps,
		gamma:      *common.gamma,
		overlay:    *common.overlay,
		screenshot: *screenshot,
	})
}

// runHeadless renders the demo to an in-memory device. Frame timestamps come
// from a simulated clock running at the requested frame rate. The digest of
// the rendered frames is written to output.
func runHeadless(output io.Writer, p *backbuffer.Preferences, opts headlessOptions) error {
	if opts.fps <= 0 {
		return fmt.Errorf("headless: frame rate must be positive (%.2f)", opts.fps)
	}
	if opts.frames < 0 {
		return fmt.Errorf("headless: frame count cannot be negative (%d)", opts.frames)
	}

	dev := softgpu.NewDevice(opts.width, opts.height)
	sw := &headlessSwitch{}

	d, err := newDemo(dev, sw, opts.width, opts.height)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	defer d.destroy()

	bb, err := backbuffer.New(dev, d, sw, p, opts.width, opts.height)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	defer bb.Destroy()

	err = applyGamma(bb, opts.gamma)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}

	now := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	step := time.Duration(float64(time.Second) / opts.fps)
	clock := func() time.Time {
		return now
	}
	bb.SetClock(clock)

	var tally *overlay.Tally
	if opts.overlay {
		tally = &overlay.Tally{}
		d.overlay = overlay.NewOverlay(tally)
		d.clock = clock
		d.ctrl = bb.VSync()
		d.settings = p.VSyncSettings
	}

	dig := digest.NewVideo()

	for i := 0; i < opts.frames; i++ {
		now = now.Add(step)
		bb.Lock(true)
		if err := d.draw(); err != nil {
			bb.Unlock()
			return fmt.Errorf("headless: %w", err)
		}
		if !bb.Update() {
			bb.Unlock()
		}

		if err := dig.Frame(bb.ScreenshotBuffer()); err != nil {
			return fmt.Errorf("headless: %w", err)
		}
	}

	logger.Logf(logger.Allow, "headless", "%d frames rendered at %.2ffps", opts.frames, opts.fps)
	fmt.Fprintf(output, "frames: %d\n", opts.frames)
	fmt.Fprintf(output, "vsync: %v (%d switches)\n", sw.on, sw.switches)
	fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	if tally != nil {
		fmt.Fprintf(output, "overlay: %d frames\n", tally.Frames)
	}

	if opts.screenshot != "" {
		if !bb.SaveScreenshot(opts.screenshot) {
			return fmt.Errorf("headless: screenshot not saved")
		}
		fmt.Fprintf(output, "screenshot: %s\n", opts.screenshot)
	}

	return nil
}
