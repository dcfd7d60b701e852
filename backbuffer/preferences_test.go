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

package backbuffer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macdoom/backbuffer/backbuffer"
	"github.com/macdoom/backbuffer/prefs"
	"github.com/macdoom/backbuffer/test"
	"github.com/macdoom/backbuffer/vsync"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := backbuffer.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	settings := p.VSyncSettings()
	test.ExpectEquality(t, settings, vsync.DefaultSettings())
	test.ExpectEquality(t, p.Smooth.Get().(bool), false)
	test.ExpectEquality(t, p.PostProcess.Get().(int), backbuffer.PostProcessOff)

	test.ExpectFailure(t, p.VSync.Set(-1))
	test.ExpectFailure(t, p.SwitchFrames.Set(0))
	test.ExpectFailure(t, p.SwitchFPS.Set("fast"))
	test.ExpectFailure(t, p.PostProcess.Set(9))
	test.ExpectEquality(t, p.VSyncSettings(), vsync.DefaultSettings())
}

func TestPreferencesSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := backbuffer.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.VSync.Set("1"))
	test.DemandSuccess(t, p.SwitchFrames.Set(20))
	test.DemandSuccess(t, p.Smooth.Set(true))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "backbuffer.vsync :: 1\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "backbuffer.smooth :: true\n"))

	q, err := backbuffer.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.VSyncSettings(), vsync.Settings{
		Mode:         vsync.On,
		SwitchFrames: 20,
		TargetFPS:    vsync.DefaultTargetFPS,
	})
	test.ExpectEquality(t, q.Smooth.Get().(bool), true)

	// reverting and loading again
	q.SetDefaults()
	test.ExpectEquality(t, q.VSyncSettings(), vsync.DefaultSettings())
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.VSyncSettings().Mode, vsync.On)
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("backbuffer.vsync::0; backbuffer.postprocess::2")
	p, err := backbuffer.NewPreferences(pth)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.VSyncSettings().Mode, vsync.Off)
	test.ExpectEquality(t, p.PostProcess.Get().(int), backbuffer.PostProcessFXAAHigh)

	// out of range values on the command line are an error
	prefs.PushCommandLineStack("backbuffer.vsync::5")
	_, err = backbuffer.NewPreferences(pth)
	prefs.PopCommandLineStack()
	test.ExpectFailure(t, err)
}
