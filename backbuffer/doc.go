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

// Package backbuffer presents an off-screen render target to the window.
//
// The host draws each frame into the render target between Lock() and
// Update(). Update() optionally runs an anti-aliasing post-process pass over
// the render target, then composites the result into the window through a
// gamma correction shader, runs the adaptive vsync controller and swaps
// buffers.
//
// A BackBuffer is the explicit context for all of this and should be passed
// to whatever needs it. At most one BackBuffer should be live at any one
// time for a given Preferences instance. Preferences changes are forwarded
// to the live BackBuffer through the preference hooks.
//
// All functions must be called from the render thread.
package backbuffer
