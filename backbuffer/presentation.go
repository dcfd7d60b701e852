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

import "fmt"

// Rect is an area of the window in pixels. The origin is the bottom left
// corner.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", r.Width, r.Height, r.X, r.Y)
}

// SetPresentation sets the area of the window that the backbuffer is drawn
// into. The rest of the window is cleared on the next Update().
func (bb *BackBuffer) SetPresentation(r Rect) {
	bb.presentation = r
	bb.dirty = true
}

// Presentation returns the area of the window that the backbuffer is drawn
// into.
func (bb *BackBuffer) Presentation() Rect {
	return bb.presentation
}

// FitPresentation letterboxes the backbuffer in a window of the specified
// size, preserving the aspect ratio of the backbuffer.
func (bb *BackBuffer) FitPresentation(windowWidth int32, windowHeight int32) {
	bb.SetPresentation(fit(bb.width, bb.height, windowWidth, windowHeight))
}

func fit(width int32, height int32, windowWidth int32, windowHeight int32) Rect {
	if width <= 0 || height <= 0 || windowWidth <= 0 || windowHeight <= 0 {
		return Rect{}
	}

	// compare aspect ratios without division
	w := int64(windowWidth)
	h := int64(windowHeight)
	if w*int64(height) > h*int64(width) {
		// window is wider. bars at the sides
		w = h * int64(width) / int64(height)
	} else {
		// window is taller. bars at the top and bottom
		h = w * int64(height) / int64(width)
	}

	return Rect{
		X:      int32((int64(windowWidth) - w) / 2),
		Y:      int32((int64(windowHeight) - h) / 2),
		Width:  int32(w),
		Height: int32(h),
	}
}
