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

// Package gamma implements the 256 entry lookup table used to gamma correct
// the backbuffer when it is presented.
//
// Each entry is an RGB triple packed into a uint32 with a constant alpha. The
// table is exposed to callers as three ramps of 16 bit values, in the same
// form as display gamma APIs, and to the GPU as a 256x1 RGBA image.
package gamma

import (
	"math"
)

// Size is the number of entries in the table.
const Size = 256

const alpha = 0xff000000

// Table is the gamma lookup table. The zero value is not an identity table.
// Use NewTable() or NewTableFromGamma().
type Table struct {
	entries [Size]uint32
}

func pack(r, g, b uint8) uint32 {
	return alpha | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// NewTable returns the identity table.
func NewTable() *Table {
	tab := &Table{}
	for i := range tab.entries {
		tab.entries[i] = pack(uint8(i), uint8(i), uint8(i))
	}
	return tab
}

// NewTableFromGamma returns a table for a power law gamma curve. Values of
// one or less than or equal to zero produce the identity table.
func NewTableFromGamma(value float64) *Table {
	tab := NewTable()
	if value <= 0 || value == 1 {
		return tab
	}
	for i := range tab.entries {
		v := math.Pow(float64(i)/(Size-1), 1/value)
		c := uint8(math.Round(v * (Size - 1)))
		tab.entries[i] = pack(c, c, c)
	}
	return tab
}

// Entry returns the packed value for the index.
func (tab *Table) Entry(i uint8) uint32 {
	return tab.entries[i]
}

// Ramp returns the table as three 16 bit ramps. The low byte of every value
// is zero.
func (tab *Table) Ramp() (r [Size]uint16, g [Size]uint16, b [Size]uint16) {
	for i, e := range tab.entries {
		r[i] = uint16(e&0xff) << 8
		g[i] = uint16((e>>8)&0xff) << 8
		b[i] = uint16((e>>16)&0xff) << 8
	}
	return r, g, b
}

// SetRamp replaces the table with three 16 bit ramps. Only the high byte of
// each value is kept.
func (tab *Table) SetRamp(r *[Size]uint16, g *[Size]uint16, b *[Size]uint16) {
	for i := range tab.entries {
		tab.entries[i] = pack(uint8(r[i]>>8), uint8(g[i]>>8), uint8(b[i]>>8))
	}
}

// IsIdentity returns true if the table makes no change to color values.
func (tab *Table) IsIdentity() bool {
	for i, e := range tab.entries {
		if e != pack(uint8(i), uint8(i), uint8(i)) {
			return false
		}
	}
	return true
}

// Pixels returns the table as RGBA bytes, suitable for uploading to a 256x1
// texture.
func (tab *Table) Pixels() []byte {
	p := make([]byte, Size*4)
	for i, e := range tab.entries {
		p[i*4] = uint8(e)
		p[i*4+1] = uint8(e >> 8)
		p[i*4+2] = uint8(e >> 16)
		p[i*4+3] = uint8(e >> 24)
	}
	return p
}
