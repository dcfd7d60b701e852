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

package modalflag_test

import (
	"strings"
	"testing"
	"time"

	"github.com/macdoom/backbuffer/modalflag"
	"github.com/macdoom/backbuffer/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "-width", "640", "-wait", "2s", "-gamma", "2.2", "a", "b"})
	logging := md.AddBool("log", false, "echo log")
	width := md.AddInt("width", 320, "window width")
	title := md.AddString("title", "none", "window title")
	wait := md.AddDuration("wait", 0, "wait before starting")
	gamma := md.AddFloat64("gamma", 1.0, "gamma correction")

	test.ExpectEquality(t, *logging, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, *logging, true)
	test.ExpectEquality(t, *width, 640)
	test.ExpectEquality(t, *title, "none")
	test.ExpectEquality(t, *wait, 2*time.Second)
	test.ExpectEquality(t, *gamma, 2.2)

	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "a")
	test.ExpectEquality(t, md.GetArg(1), "b")
	test.ExpectEquality(t, md.GetArg(2), "")

	var set []string
	md.Visit(func(f string) {
		set = append(set, f)
	})
	test.ExpectEquality(t, strings.Join(set, ","), "gamma,log,wait,width")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-width", "wide"})
	_ = md.AddInt("width", 320, "window width")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "headless", "-frames", "10", "out.png"})
	md.AddSubModes("run", "headless")
	_ = md.AddBool("log", false, "echo log")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "HEADLESS")

	md.NewMode()
	frames := md.AddInt("frames", 1, "number of frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.GetArg(0), "out.png")

	// no further sub-modes so the path is unchanged
	test.ExpectEquality(t, md.Path(), "HEADLESS")
	test.ExpectEquality(t, md.String(), "HEADLESS")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"game.wad"})
	md.AddSubModes("run", "headless")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "game.wad")
}

func TestHelp(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("Usage:\n  no flags or sub-modes\n"))

	cw.Reset()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "headless")
	_ = md.AddBool("log", false, "echo log")
	md.AdditionalHelp("more information")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	s := cw.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(s, "-log"))
	test.ExpectSuccess(t, strings.Contains(s, "echo log"))
	test.ExpectSuccess(t, strings.Contains(s, "available sub-modes: RUN, HEADLESS\n"))
	test.ExpectSuccess(t, strings.Contains(s, "default: RUN\n"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "\nmore information\n"))
}
