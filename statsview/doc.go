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

// Package statsview serves runtime statistics of the demo program over HTTP.
// The server is only included when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Charts are then available at:
//
//	http://localhost:12640/debug/statsview
//
// Without the tag, Available() returns false and Launch() returns an error.
package statsview

// DefaultAddress is the address used when Launch() is given an empty string.
const DefaultAddress = "localhost:12640"

const urlPath = "/debug/statsview"
