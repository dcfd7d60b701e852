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

package overlay

import "github.com/inkyblackness/imgui-go/v4"

// Tally is a Renderer that draws nothing. It counts what would have been
// drawn. Used when there is no GL context, such as in headless mode.
type Tally struct {
	// the number of calls to Render()
	Frames int

	// totals for the most recent frame
	Lists    int
	Commands int
	Elements int

	// font atlas dimensions, zero until AddFontTexture() is called
	FontWidth  int
	FontHeight int

	Destroyed bool
}

// AddFontTexture implements the Renderer interface.
func (rnd *Tally) AddFontTexture(fnts imgui.FontAtlas) uint32 {
	image := fnts.TextureDataRGBA32()
	rnd.FontWidth = image.Width
	rnd.FontHeight = image.Height
	return 1
}

// Render implements the Renderer interface.
func (rnd *Tally) Render(_ [2]float32, _ [2]float32, drawData imgui.DrawData) {
	rnd.Frames++
	rnd.Lists = 0
	rnd.Commands = 0
	rnd.Elements = 0
	for _, list := range drawData.CommandLists() {
		rnd.Lists++
		for _, cmd := range list.Commands() {
			rnd.Commands++
			rnd.Elements += cmd.ElementCount()
		}
	}
}

// Destroy implements the Renderer interface.
func (rnd *Tally) Destroy() {
	rnd.Destroyed = true
}
