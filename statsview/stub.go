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

//go:build !statsview

package statsview

import "errors"

// Available returns true if the program was built with the statsview tag.
func Available() bool {
	return false
}

// Launch always fails without the statsview build tag.
func Launch(_ string) (string, func(), error) {
	return "", func() {}, errors.New("statsview: not available in this build")
}
