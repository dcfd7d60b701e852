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

// Package vsync decides when hardware vertical sync should be enabled.
//
// In the Auto mode, vsync is switched off when it is costing too many frames
// and switched back on when the frame rate recovers. A switch only happens
// after a run of consecutive frames all pointing the same way, so that a
// single slow or fast frame near the target never causes a switch.
package vsync

import (
	"fmt"
	"strings"
	"time"

	"github.com/macdoom/backbuffer/logger"
)

// Mode is the user's vsync preference.
type Mode int

// List of valid Mode values.
const (
	Off Mode = iota
	On
	Auto
)

func (m Mode) String() string {
	switch m {
	case Off:
		return "off"
	case On:
		return "on"
	case Auto:
		return "auto"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode converts a string to a Mode. Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return Off, nil
	case "on", "1":
		return On, nil
	case "auto", "automatic", "2":
		return Auto, nil
	}
	return Off, fmt.Errorf("vsync: unrecognised mode %q", s)
}

// Activity is the state of the host that decides whether gameplay is
// running.
type Activity struct {
	Paused      bool
	Frozen      bool
	MenuActive  bool
	ConsoleOpen bool
}

// Running returns true if none of the activity flags are set.
func (a Activity) Running() bool {
	return !a.Paused && !a.Frozen && !a.MenuActive && !a.ConsoleOpen
}

// Switch is the hardware vsync control.
type Switch interface {
	VSync() bool
	SetVSync(on bool) error
}

// Default values for Settings.
const (
	DefaultSwitchFrames = 10
	DefaultTargetFPS    = 60
)

// Settings for the controller. Read every frame so that changes take effect
// immediately.
type Settings struct {
	Mode Mode

	// number of consecutive qualifying frames before an automatic switch
	SwitchFrames int

	// frame rate that vsync is expected to achieve
	TargetFPS int
}

// DefaultSettings returns the Settings used when no preference is set.
func DefaultSettings() Settings {
	return Settings{
		Mode:         Auto,
		SwitchFrames: DefaultSwitchFrames,
		TargetFPS:    DefaultTargetFPS,
	}
}

// Controller is the adaptive vsync state machine. It must be updated exactly
// once per presented frame.
type Controller struct {
	sw Switch

	frame          int
	lastQualifying int
	consecutive    int

	// timestamp of the previous sampled frame. zero if there is no sample
	lastTime time.Time
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(sw Switch) *Controller {
	return &Controller{
		sw:             sw,
		lastQualifying: -1,
	}
}

// Reset the counters.
func (c *Controller) Reset() {
	c.consecutive = 0
	c.lastQualifying = -1
	c.lastTime = time.Time{}
}

// Frame returns the number of calls to Update().
func (c *Controller) Frame() int {
	return c.frame
}

// Consecutive returns the length of the current run of qualifying frames.
func (c *Controller) Consecutive() int {
	return c.consecutive
}

func (c *Controller) set(on bool) {
	if err := c.sw.SetVSync(on); err != nil {
		logger.Log(logger.Allow, "vsync", err)
		return
	}
	if on {
		logger.Log(logger.Allow, "vsync", "enabled")
	} else {
		logger.Log(logger.Allow, "vsync", "disabled")
	}
}

// Update the controller with the timestamp of the frame being presented.
// The running argument should be the result of Activity.Running().
func (c *Controller) Update(settings Settings, running bool, now time.Time) {
	c.frame++

	if settings.Mode != Auto || !running {
		c.consecutive = 0
		c.lastTime = time.Time{}

		switch settings.Mode {
		case Off:
			if c.sw.VSync() {
				c.set(false)
			}
		case On:
			if !c.sw.VSync() {
				c.set(true)
			}
		}
		return
	}

	previous := c.lastTime
	c.lastTime = now
	if previous.IsZero() || !now.After(previous) {
		return
	}

	threshold := settings.SwitchFrames
	if threshold <= 0 {
		threshold = DefaultSwitchFrames
	}
	target := float64(settings.TargetFPS)
	if target <= 0 {
		target = DefaultTargetFPS
	}

	fps := float64(time.Second) / float64(now.Sub(previous))
	enabled := c.sw.VSync()

	if !((enabled && fps < target) || (!enabled && fps >= target)) {
		c.consecutive = 0
		return
	}

	if c.frame != c.lastQualifying+1 {
		c.consecutive = 0
	}
	c.consecutive++
	c.lastQualifying = c.frame

	if c.consecutive >= threshold {
		c.set(!enabled)
		c.consecutive = 0
	}
}
