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
	"testing"

	"github.com/macdoom/backbuffer/test"
)

func TestFit(t *testing.T) {
	test.ExpectEquality(t, fit(320, 200, 320, 200), Rect{Width: 320, Height: 200})
	test.ExpectEquality(t, fit(320, 200, 640, 400), Rect{Width: 640, Height: 400})
	test.ExpectEquality(t, fit(320, 200, 1920, 1080), Rect{X: 96, Y: 0, Width: 1728, Height: 1080})
	test.ExpectEquality(t, fit(320, 240, 1000, 1000), Rect{X: 0, Y: 125, Width: 1000, Height: 750})
	test.ExpectEquality(t, fit(320, 200, 0, 1000), Rect{})
	test.ExpectEquality(t, fit(0, 200, 100, 100), Rect{})
}
