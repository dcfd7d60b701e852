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

// Package platform opens an SDL window with an OpenGL 2.1 context for the
// backbuffer to present into. It also provides the hardware vsync switch
// and the display gamma ramp of the window.
package platform

import (
	"fmt"
	"runtime"

	"github.com/macdoom/backbuffer/logger"
	"github.com/macdoom/backbuffer/version"
	"github.com/macdoom/backbuffer/vsync"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the SDL window and its GL context.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	quit    bool
	resized bool

	// the window has input focus. gameplay is paused while it does not
	focused bool
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window is width by height pixels and the GL context is current
// on return.
func NewPlatform(title string, width int32, height int32) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. GL
	// contexts are bound to a thread and we never unlock it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{focused: true}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	if title == "" {
		title = version.String()
	}

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d", major, minor)

	return plt, nil
}

// Destroy the GL context and the window and quit SDL.
func (plt *Platform) Destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}

// RefreshRate returns the refresh rate of the display in Hz.
func (plt *Platform) RefreshRate() int32 {
	return plt.mode.RefreshRate
}

// DrawableSize returns the size of the window in pixels. This can differ from
// the window size on high DPI displays.
func (plt *Platform) DrawableSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// Minimised returns true if the window is minimised.
func (plt *Platform) Minimised() bool {
	return plt.window.GetFlags()&sdl.WINDOW_MINIMIZED != 0
}

// Swap the front and back buffers.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// Service handles pending SDL events. It returns false once the window has
// been asked to close. The resized argument is set to true if the window has
// changed size.
func (plt *Platform) Service() (running bool, resized bool) {
	plt.resized = false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		plt.handleEvent(ev)
	}
	return !plt.quit, plt.resized
}

func (plt *Platform) handleEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		plt.quit = true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			plt.resized = true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			plt.focused = false
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			plt.focused = true
		}
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
			plt.quit = true
		}
	}
}

// Activity returns the gameplay activity implied by the window state. The
// game is paused while the window does not have input focus.
func (plt *Platform) Activity() vsync.Activity {
	return vsync.Activity{Paused: !plt.focused}
}

// VSync implements the vsync.Switch interface.
func (plt *Platform) VSync() bool {
	interval, err := sdl.GLGetSwapInterval()
	if err != nil {
		return false
	}
	return interval != 0
}

// SetVSync implements the vsync.Switch interface.
func (plt *Platform) SetVSync(on bool) error {
	interval := 0
	if on {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		return fmt.Errorf("sdl: swap interval: %w", err)
	}
	return nil
}

// SetDisplayGamma sets the gamma ramp of the display the window is on. Used
// when there is no backbuffer to apply the gamma table.
func (plt *Platform) SetDisplayGamma(r *[256]uint16, g *[256]uint16, b *[256]uint16) error {
	if err := plt.window.SetGammaRamp(r, g, b); err != nil {
		return fmt.Errorf("sdl: gamma ramp: %w", err)
	}
	return nil
}
