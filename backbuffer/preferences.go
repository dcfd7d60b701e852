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

	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/prefs"
	"github.com/macdoom/backbuffer/vsync"
)

// Post-process levels.
const (
	PostProcessOff = iota
	PostProcessFXAA
	PostProcessFXAAHigh
)

// Preferences for the backbuffer.
type Preferences struct {
	dsk *prefs.Disk

	// the backbuffer that hooks are forwarded to
	bb *BackBuffer

	// vsync mode. 0 is off, 1 is on, 2 is automatic
	VSync prefs.Int

	// number of consecutive frames before an automatic vsync switch
	SwitchFrames prefs.Int

	// the frame rate that automatic vsync tries to maintain
	SwitchFPS prefs.Int

	// linear filtering of the render target when it is presented
	Smooth prefs.Bool

	// anti-aliasing post-process level
	PostProcess prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func checkRange(key string, lo int, hi int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("backbuffer: %s: not an integer", key)
		}
		if n < lo || n > hi {
			return fmt.Errorf("backbuffer: %s: %d is outside the range %d to %d", key, n, lo, hi)
		}
		return nil
	}
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file at path.
// Values on the prefs command line stack take priority.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.VSync.SetHookPre(checkRange("vsync", int(vsync.Off), int(vsync.Auto)))
	p.SwitchFrames.SetHookPre(checkRange("vsync switch frames", 1, 1000))
	p.SwitchFPS.SetHookPre(checkRange("vsync switch fps", 1, 1000))
	p.PostProcess.SetHookPre(checkRange("post-process", PostProcessOff, PostProcessFXAAHigh))

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}

	err = p.dsk.Add("backbuffer.vsync", &p.VSync)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = p.dsk.Add("backbuffer.vsync.switchFrames", &p.SwitchFrames)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = p.dsk.Add("backbuffer.vsync.switchFPS", &p.SwitchFPS)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = p.dsk.Add("backbuffer.smooth", &p.Smooth)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}
	err = p.dsk.Add("backbuffer.postprocess", &p.PostProcess)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, fmt.Errorf("backbuffer: %w", err)
	}

	p.Smooth.SetHookPost(func(v prefs.Value) error {
		if p.bb != nil {
			p.bb.SetSmoothPicture(v.(bool))
		}
		return nil
	})

	p.PostProcess.SetHookPost(func(v prefs.Value) error {
		if p.bb != nil {
			return p.bb.SetPostProcess(v.(int))
		}
		return nil
	})

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.VSync.Set(int(vsync.Auto))
	p.SwitchFrames.Set(vsync.DefaultSwitchFrames)
	p.SwitchFPS.Set(vsync.DefaultTargetFPS)
	p.Smooth.Set(false)
	p.PostProcess.Set(PostProcessOff)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return err
	}
	logger.Log(logger.Allow, "backbuffer", "preferences saved")
	return nil
}

// VSyncSettings returns the current vsync preferences.
func (p *Preferences) VSyncSettings() vsync.Settings {
	return vsync.Settings{
		Mode:         vsync.Mode(p.VSync.Get().(int)),
		SwitchFrames: p.SwitchFrames.Get().(int),
		TargetFPS:    p.SwitchFPS.Get().(int),
	}
}
