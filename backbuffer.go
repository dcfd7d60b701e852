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
	"os"
	"os/signal"

	"github.com/macdoom/backbuffer/backbuffer"
	"github.com/macdoom/backbuffer/gamma"
	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/modalflag"
	"github.com/macdoom/backbuffer/paths"
	"github.com/macdoom/backbuffer/prefs"
	"github.com/macdoom/backbuffer/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// guiCreator is the part of a mode that must run on the main thread. SDL
// window events and the GL context are tied to the thread that created them.
type guiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not loop longer than it takes to present a single
	// frame. It returns false when the gui wants to end.
	Service() bool
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (guiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan guiCreator
	creationError chan error

	// closed by the main thread when the gui no longer wants to be serviced
	guiDone chan struct{}
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (guiCreator, error)),
		creation:      make(chan guiCreator),
		creationError: make(chan error),
		guiDone:       make(chan struct{}),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	var gui guiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy()
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil && !gui.Service() {
				gui.Destroy()
				gui = nil
				close(sync.guiDone)
			}
		}
	}

	if gui != nil {
		gui.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by all modes.
type commonFlags struct {
	log       *bool
	prefs     *string
	width     *int
	height    *int
	gamma     *float64
	overlay   *bool
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	f := commonFlags{
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:   md.AddString("prefs", "", "override preferences. eg. \"backbuffer.vsync::0\""),
		width:   md.AddInt("width", 640, "width of the render target"),
		height:  md.AddInt("height", 480, "height of the render target"),
		gamma:   md.AddFloat64("gamma", 1.0, "gamma correction applied by the gamma table"),
		overlay: md.AddBool("overlay", true, "draw the frame rate overlay"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}
	return f
}

// apply the common flags. the returned function should be called when the
// mode has ended.
func (f commonFlags) apply() (func(), error) {
	if *f.width <= 0 || *f.height <= 0 {
		return nil, fmt.Errorf("render target must be at least 1x1 (requested %dx%d)", *f.width, *f.height)
	}

	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	var stop []func()

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		stop = append(stop, func() { prefs.PopCommandLineStack() })
	}

	if f.statsview != nil && *f.statsview {
		url, end, err := statsview.Launch(statsview.DefaultAddress)
		if err != nil {
			return nil, err
		}
		fmt.Printf("stats server available at %s\n", url)
		stop = append(stop, end)
	}

	return func() {
		for i := len(stop) - 1; i >= 0; i-- {
			stop[i]()
		}
	}, nil
}

// preferences loads the backbuffer preferences from the resource directory.
func preferences() (*backbuffer.Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return backbuffer.NewPreferences(pth)
}

// applyGamma replaces the gamma table of the backbuffer with the curve for
// value. The identity value 1.0 leaves the table alone.
func applyGamma(bb *backbuffer.BackBuffer, value float64) error {
	if value == 1.0 {
		return nil
	}
	r, g, b := gamma.NewTableFromGamma(value).Ramp()
	return bb.SetGammaRamp(&r, &g, &b)
}
