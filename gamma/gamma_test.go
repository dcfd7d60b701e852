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

package gamma_test

import (
	"math/rand"
	"testing"

	"github.com/macdoom/backbuffer/gamma"
	"github.com/macdoom/backbuffer/test"
)

func TestIdentity(t *testing.T) {
	tab := gamma.NewTable()
	test.ExpectSuccess(t, tab.IsIdentity())
	test.ExpectEquality(t, tab.Entry(0), uint32(0xff000000))
	test.ExpectEquality(t, tab.Entry(0x80), uint32(0xff808080))
	test.ExpectEquality(t, tab.Entry(0xff), uint32(0xffffffff))

	r, g, b := tab.Ramp()
	test.ExpectEquality(t, r[0x12], uint16(0x1200))
	test.ExpectEquality(t, g[0x12], uint16(0x1200))
	test.ExpectEquality(t, b[0xff], uint16(0xff00))

	test.ExpectSuccess(t, gamma.NewTableFromGamma(1.0).IsIdentity())
	test.ExpectSuccess(t, gamma.NewTableFromGamma(0).IsIdentity())
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x2600))

	var r, g, b [gamma.Size]uint16
	for i := range r {
		r[i] = uint16(rnd.Intn(0x10000))
		g[i] = uint16(rnd.Intn(0x10000))
		b[i] = uint16(rnd.Intn(0x10000))
	}

	tab := gamma.NewTable()
	tab.SetRamp(&r, &g, &b)
	test.ExpectFailure(t, tab.IsIdentity())

	gr, gg, gb := tab.Ramp()
	for i := range r {
		test.ExpectEquality(t, gr[i], r[i]&0xff00, "red", i)
		test.ExpectEquality(t, gg[i], g[i]&0xff00, "green", i)
		test.ExpectEquality(t, gb[i], b[i]&0xff00, "blue", i)
	}
}

func TestPacking(t *testing.T) {
	var r, g, b [gamma.Size]uint16
	r[1] = 0x11ff
	g[1] = 0x2200
	b[1] = 0x33aa

	tab := gamma.NewTable()
	tab.SetRamp(&r, &g, &b)
	test.ExpectEquality(t, tab.Entry(1), uint32(0xff332211))

	p := tab.Pixels()
	test.ExpectEquality(t, len(p), gamma.Size*4)
	test.ExpectEquality(t, p[4], uint8(0x11))
	test.ExpectEquality(t, p[5], uint8(0x22))
	test.ExpectEquality(t, p[6], uint8(0x33))
	test.ExpectEquality(t, p[7], uint8(0xff))
}

func TestGammaCurve(t *testing.T) {
	tab := gamma.NewTableFromGamma(2.2)
	test.ExpectFailure(t, tab.IsIdentity())

	// end points are fixed
	test.ExpectEquality(t, tab.Entry(0), uint32(0xff000000))
	test.ExpectEquality(t, tab.Entry(255), uint32(0xffffffff))

	// gamma greater than one brightens the mid-tones
	r, _, _ := tab.Ramp()
	test.ExpectSuccess(t, r[128] > 0x8000)

	// and the curve never decreases
	for i := 1; i < gamma.Size; i++ {
		if !test.ExpectSuccess(t, r[i] >= r[i-1], i) {
			break
		}
	}
}
