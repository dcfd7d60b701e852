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

import "github.com/macdoom/backbuffer/vsync"

// Host is the presentation surface that the BackBuffer draws for.
type Host interface {
	// Lock prepares the host for drawing. Calls may be nested
	Lock(buffered bool) bool
	Unlock()

	// CanUpdate returns false if the frame should not be presented, for
	// example because the window is minimised
	CanUpdate() bool

	// DrawOverlay draws any on-screen information that should be included
	// in the frame, such as a frame rate counter
	DrawOverlay()

	// Flush any pending draw commands
	Flush()

	// Swap the front and back buffers of the window
	Swap()

	// Activity reports whether gameplay is running
	Activity() vsync.Activity
}
