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

package vsync_test

import (
	"errors"
	"testing"
	"time"

	"github.com/macdoom/backbuffer/test"
	"github.com/macdoom/backbuffer/vsync"
)

type hardware struct {
	on       bool
	switches int
	fail     bool
}

func (h *hardware) VSync() bool {
	return h.on
}

func (h *hardware) SetVSync(on bool) error {
	if h.fail {
		return errors.New("swap interval not supported")
	}
	h.on = on
	h.switches++
	return nil
}

// clock produces timestamps for a constant frame rate
type clock struct {
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) tick(fps float64) time.Time {
	c.now = c.now.Add(time.Duration(float64(time.Second) / fps))
	return c.now
}

func TestMode(t *testing.T) {
	m, err := vsync.ParseMode("AUTO")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, vsync.Auto)

	m, err = vsync.ParseMode("1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, vsync.On)

	_, err = vsync.ParseMode("sometimes")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, vsync.Off.String(), "off")
	test.ExpectEquality(t, vsync.Mode(7).String(), "unknown mode (7)")
}

func TestActivity(t *testing.T) {
	test.ExpectSuccess(t, vsync.Activity{}.Running())
	test.ExpectFailure(t, vsync.Activity{Paused: true}.Running())
	test.ExpectFailure(t, vsync.Activity{Frozen: true}.Running())
	test.ExpectFailure(t, vsync.Activity{MenuActive: true}.Running())
	test.ExpectFailure(t, vsync.Activity{ConsoleOpen: true}.Running())
}

func TestFixedModes(t *testing.T) {
	hw := &hardware{}
	ctl := vsync.NewController(hw)
	clk := newClock()

	settings := vsync.DefaultSettings()
	settings.Mode = vsync.On
	ctl.Update(settings, true, clk.tick(60))
	test.ExpectSuccess(t, hw.on)
	test.ExpectEquality(t, hw.switches, 1)

	// no further switches while the mode is unchanged
	ctl.Update(settings, true, clk.tick(30))
	test.ExpectEquality(t, hw.switches, 1)

	settings.Mode = vsync.Off
	ctl.Update(settings, true, clk.tick(60))
	test.ExpectFailure(t, hw.on)
	test.ExpectEquality(t, hw.switches, 2)

	test.ExpectEquality(t, ctl.Frame(), 3)
}

func TestAutoSwitchOff(t *testing.T) {
	hw := &hardware{on: true}
	ctl := vsync.NewController(hw)
	clk := newClock()
	settings := vsync.DefaultSettings()

	// first frame has no previous timestamp and is not sampled
	ctl.Update(settings, true, clk.tick(50))
	test.ExpectEquality(t, ctl.Consecutive(), 0)

	for i := 1; i < 10; i++ {
		ctl.Update(settings, true, clk.tick(50))
		test.ExpectEquality(t, ctl.Consecutive(), i)
		test.ExpectSuccess(t, hw.on, i)
	}

	// tenth qualifying frame
	ctl.Update(settings, true, clk.tick(50))
	test.ExpectFailure(t, hw.on)
	test.ExpectEquality(t, hw.switches, 1)
	test.ExpectEquality(t, ctl.Consecutive(), 0)

	// 50fps with vsync off does not qualify. no more switches
	for i := 0; i < 50; i++ {
		ctl.Update(settings, true, clk.tick(50))
	}
	test.ExpectEquality(t, hw.switches, 1)
	test.ExpectEquality(t, ctl.Consecutive(), 0)

	// conditions reverse
	for i := 0; i < 10; i++ {
		ctl.Update(settings, true, clk.tick(75))
	}
	test.ExpectSuccess(t, hw.on)
	test.ExpectEquality(t, hw.switches, 2)
}

func TestAutoGap(t *testing.T) {
	hw := &hardware{on: true}
	ctl := vsync.NewController(hw)
	clk := newClock()
	settings := vsync.DefaultSettings()

	ctl.Update(settings, true, clk.tick(50))

	// four qualifying frames then one frame that meets the target
	for i := 0; i < 4; i++ {
		ctl.Update(settings, true, clk.tick(50))
	}
	test.ExpectEquality(t, ctl.Consecutive(), 4)

	ctl.Update(settings, true, clk.tick(60))
	test.ExpectEquality(t, ctl.Consecutive(), 0)

	// nine more qualifying frames is not enough
	for i := 0; i < 9; i++ {
		ctl.Update(settings, true, clk.tick(50))
	}
	test.ExpectSuccess(t, hw.on)
	test.ExpectEquality(t, ctl.Consecutive(), 9)

	ctl.Update(settings, true, clk.tick(50))
	test.ExpectFailure(t, hw.on)
	test.ExpectEquality(t, hw.switches, 1)
}

func TestAutoUnchangedTimestamp(t *testing.T) {
	hw := &hardware{on: true}
	ctl := vsync.NewController(hw)
	clk := newClock()
	settings := vsync.DefaultSettings()

	ctl.Update(settings, true, clk.tick(50))
	for i := 0; i < 5; i++ {
		ctl.Update(settings, true, clk.tick(50))
	}
	test.ExpectEquality(t, ctl.Consecutive(), 5)

	// repeated timestamp is skipped. the next frame number is no longer
	// consecutive with the last qualifying frame
	ctl.Update(settings, true, clk.now)
	test.ExpectEquality(t, ctl.Consecutive(), 5)
	ctl.Update(settings, true, clk.tick(50))
	test.ExpectEquality(t, ctl.Consecutive(), 1)
}

func TestAutoNotRunning(t *testing.T) {
	hw := &hardware{on: true}
	ctl := vsync.NewController(hw)
	clk := newClock()
	settings := vsync.DefaultSettings()

	ctl.Update(settings, true, clk.tick(50))
	for i := 0; i < 8; i++ {
		ctl.Update(settings, true, clk.tick(50))
	}
	test.ExpectEquality(t, ctl.Consecutive(), 8)

	// pausing resets the run and the hardware is left alone in auto mode
	ctl.Update(settings, vsync.Activity{Paused: true}.Running(), clk.tick(50))
	test.ExpectEquality(t, ctl.Consecutive(), 0)
	test.ExpectSuccess(t, hw.on)

	// first frame after the pause is not sampled
	ctl.Update(settings, true, clk.tick(50))
	test.ExpectEquality(t, ctl.Consecutive(), 0)
	ctl.Update(settings, true, clk.tick(50))
	test.ExpectEquality(t, ctl.Consecutive(), 1)
}

func TestSettingsAndFailure(t *testing.T) {
	hw := &hardware{on: true, fail: true}
	ctl := vsync.NewController(hw)
	clk := newClock()

	settings := vsync.Settings{
		Mode:         vsync.Auto,
		SwitchFrames: 3,
		TargetFPS:    30,
	}

	ctl.Update(settings, true, clk.tick(25))
	for i := 0; i < 3; i++ {
		ctl.Update(settings, true, clk.tick(25))
	}

	// switch failed but the run still resets
	test.ExpectSuccess(t, hw.on)
	test.ExpectEquality(t, ctl.Consecutive(), 0)

	hw.fail = false
	for i := 0; i < 3; i++ {
		ctl.Update(settings, true, clk.tick(25))
	}
	test.ExpectFailure(t, hw.on)

	ctl.Reset()
	test.ExpectEquality(t, ctl.Consecutive(), 0)
}
