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
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macdoom/backbuffer/backbuffer"
	"github.com/macdoom/backbuffer/prefs"
	"github.com/macdoom/backbuffer/test"
)

func headlessPrefs(t *testing.T) *backbuffer.Preferences {
	t.Helper()
	p, err := backbuffer.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	return p
}

// results splits the output of runHeadless into fields.
func results(t *testing.T, opts headlessOptions) map[string]string {
	t.Helper()

	var out strings.Builder
	err := runHeadless(&out, headlessPrefs(t), opts)
	test.DemandSuccess(t, err)

	r := make(map[string]string)
	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		k, v, ok := strings.Cut(l, ": ")
		test.DemandSuccess(t, ok, l)
		r[k] = v
	}
	return r
}

func TestHeadlessVSyncOn(t *testing.T) {
	r := results(t, headlessOptions{
		width:  32,
		height: 24,
		frames: 30,
		fps:    60,
		gamma:  1.0,
	})

	// a steady 60fps meets the target so vsync is switched on once
	test.ExpectEquality(t, r["frames"], "30")
	test.ExpectEquality(t, r["vsync"], "true (1 switches)")
}

func TestHeadlessVSyncOff(t *testing.T) {
	r := results(t, headlessOptions{
		width:  32,
		height: 24,
		frames: 30,
		fps:    30,
		gamma:  2.2,
	})
	test.ExpectEquality(t, r["frames"], "30")
	test.ExpectEquality(t, r["vsync"], "false (0 switches)")
}

func TestHeadlessPrefsOverride(t *testing.T) {
	prefs.PushCommandLineStack("backbuffer.vsync::1")
	defer prefs.PopCommandLineStack()

	r := results(t, headlessOptions{
		width:  32,
		height: 24,
		frames: 5,
		fps:    30,
		gamma:  1.0,
	})
	test.ExpectEquality(t, r["vsync"], "true (1 switches)")
}

func TestHeadlessDigest(t *testing.T) {
	opts := headlessOptions{
		width:  32,
		height: 24,
		frames: 10,
		fps:    60,
		gamma:  1.0,
	}

	a := results(t, opts)
	b := results(t, opts)
	test.ExpectEquality(t, len(a["digest"]), 40)
	test.ExpectEquality(t, a["digest"], b["digest"])

	// the test pattern is animated so an extra frame changes the digest
	opts.frames++
	c := results(t, opts)
	test.ExpectInequality(t, a["digest"], c["digest"])
}

func TestHeadlessScreenshot(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "frame.png")

	r := results(t, headlessOptions{
		width:      32,
		height:     24,
		frames:     3,
		fps:        60,
		gamma:      1.0,
		screenshot: pth,
	})
	test.ExpectEquality(t, r["screenshot"], pth)

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 32)
	test.ExpectEquality(t, img.Bounds().Dy(), 24)
}

func TestHeadlessBadOptions(t *testing.T) {
	p := headlessPrefs(t)

	var out strings.Builder
	err := runHeadless(&out, p, headlessOptions{width: 32, height: 24, frames: 1, fps: 0})
	test.ExpectFailure(t, err)

	err = runHeadless(&out, p, headlessOptions{width: 32, height: 24, frames: -1, fps: 60})
	test.ExpectFailure(t, err)

	// preferences can be reused after a failed run
	err = runHeadless(&out, p, headlessOptions{width: 32, height: 24, frames: 1, fps: 60, gamma: 1.0})
	test.ExpectSuccess(t, err)
}

func TestHeadlessOverlay(t *testing.T) {
	opts := headlessOptions{
		width:   32,
		height:  24,
		frames:  5,
		fps:     60,
		gamma:   1.0,
		overlay: true,
	}

	r := results(t, opts)
	test.ExpectEquality(t, r["overlay"], "5 frames")

	opts.overlay = false
	r = results(t, opts)
	_, ok := r["overlay"]
	test.ExpectFailure(t, ok)
}
