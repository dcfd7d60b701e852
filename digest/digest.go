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

// Package digest produces a cryptographic hash of rendered frames. The hash
// can be used to compare the output of subsequent runs. If a new hash differs
// from a previously recorded value then something in the rendering has
// changed.
package digest

// Digest implementations return the current hash as a hex string.
type Digest interface {
	Hash() string
	ResetDigest()
}
