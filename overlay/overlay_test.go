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

package overlay_test

import (
	"testing"

	"github.com/macdoom/backbuffer/overlay"
	"github.com/macdoom/backbuffer/test"
	"github.com/macdoom/backbuffer/vsync"
)

func TestFontAtlas(t *testing.T) {
	rnd := &overlay.Tally{}
	oly := overlay.NewOverlay(rnd)
	defer oly.Destroy()

	test.ExpectEquality(t, oly.FontTexture(), uint32(1))
	test.ExpectSuccess(t, rnd.FontWidth > 0)
	test.ExpectSuccess(t, rnd.FontHeight > 0)
	test.ExpectEquality(t, rnd.Frames, 0)
}

func TestDraw(t *testing.T) {
	rnd := &overlay.Tally{}
	oly := overlay.NewOverlay(rnd)
	defer oly.Destroy()

	info := overlay.Info{
		FPS:   60,
		VSync: true,
		Mode:  vsync.On,
		Frame: 100,
	}

	oly.Draw(info, 320, 240, 1.0/60.0)
	test.ExpectEquality(t, rnd.Frames, 1)
	test.ExpectSuccess(t, rnd.Lists > 0)
	test.ExpectSuccess(t, rnd.Elements > 0)
	fixed := rnd.Elements

	// the automatic mode adds the consecutive frame count
	info.Mode = vsync.Auto
	info.Consecutive = 5
	oly.Draw(info, 320, 240, 1.0/60.0)
	test.ExpectEquality(t, rnd.Frames, 2)
	test.ExpectSuccess(t, rnd.Elements > fixed, rnd.Elements, fixed)

	// no time passing is not a problem
	oly.Draw(info, 320, 240, 0)
	test.ExpectEquality(t, rnd.Frames, 3)
}

func TestEmptyFramebuffer(t *testing.T) {
	rnd := &overlay.Tally{}
	oly := overlay.NewOverlay(rnd)
	defer oly.Destroy()

	oly.Draw(overlay.Info{}, 0, 240, 1.0/60.0)
	oly.Draw(overlay.Info{}, 320, 0, 1.0/60.0)
	test.ExpectEquality(t, rnd.Frames, 0)
}

func TestDestroy(t *testing.T) {
	rnd := &overlay.Tally{}
	oly := overlay.NewOverlay(rnd)

	oly.Destroy()
	test.ExpectSuccess(t, rnd.Destroyed)

	// safe to destroy twice and to draw after destruction
	oly.Destroy()
	oly.Draw(overlay.Info{}, 320, 240, 1.0/60.0)
	test.ExpectEquality(t, rnd.Frames, 0)

	// a new overlay can be created after the previous one is destroyed
	rnd = &overlay.Tally{}
	oly = overlay.NewOverlay(rnd)
	defer oly.Destroy()
	oly.Draw(overlay.Info{}, 320, 240, 1.0/60.0)
	test.ExpectEquality(t, rnd.Frames, 1)
}
