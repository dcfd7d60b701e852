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

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/macdoom/backbuffer/vsync"
)

// Renderer draws the imgui draw lists produced by the Overlay.
type Renderer interface {
	// AddFontTexture uploads the font atlas and returns the ID of the
	// texture it was uploaded to
	AddFontTexture(fnts imgui.FontAtlas) uint32

	// Render draws the draw data into the bound framebuffer. The
	// displaySize is the size of the imgui space and framebufferSize is the
	// size of the framebuffer in pixels
	Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData)

	Destroy()
}

// Info is the information shown by the overlay.
type Info struct {
	FPS         float64
	VSync       bool
	Mode        vsync.Mode
	Consecutive int
	Frame       int
}

// Overlay is the imgui context and the renderer used to draw it.
type Overlay struct {
	context *imgui.Context
	io      imgui.IO
	rnd     Renderer

	fontTexture uint32
}

// fallback frame time if a frame is drawn with no time passing
const minDeltaTime = 1.0 / 60.0

var (
	colText  = imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0}
	colOn    = imgui.Vec4{X: 0.4, Y: 1.0, Z: 0.4, W: 1.0}
	colOff   = imgui.Vec4{X: 1.0, Y: 0.4, Z: 0.4, W: 1.0}
	colFaint = imgui.Vec4{X: 0.7, Y: 0.7, Z: 0.7, W: 1.0}
)

const padding = 8

// NewOverlay is the preferred method of initialisation for the Overlay type.
// The imgui context it creates becomes the current context.
func NewOverlay(rnd Renderer) *Overlay {
	oly := &Overlay{
		context: imgui.CreateContext(nil),
		rnd:     rnd,
	}
	_ = oly.context.SetCurrent()
	oly.io = imgui.CurrentIO()

	// the overlay has no settings worth keeping between runs
	oly.io.SetIniFilename("")

	fnts := oly.io.Fonts()
	fnts.AddFontDefault()
	oly.fontTexture = rnd.AddFontTexture(fnts)
	fnts.SetTextureID(imgui.TextureID(oly.fontTexture))

	return oly
}

// Destroy the renderer and the imgui context.
func (oly *Overlay) Destroy() {
	if oly.context == nil {
		return
	}
	oly.rnd.Destroy()
	oly.context.Destroy()
	oly.context = nil
}

// FontTexture returns the ID of the texture holding the font atlas.
func (oly *Overlay) FontTexture() uint32 {
	return oly.fontTexture
}

// Draw the overlay into the bound framebuffer, which is width by height
// pixels. The deltaTime is the time in seconds since the previous call.
func (oly *Overlay) Draw(info Info, width int32, height int32, deltaTime float32) {
	if oly.context == nil || width <= 0 || height <= 0 {
		return
	}
	_ = oly.context.SetCurrent()

	if deltaTime <= 0 {
		deltaTime = minDeltaTime
	}

	sz := [2]float32{float32(width), float32(height)}
	oly.io.SetDisplaySize(imgui.Vec2{X: sz[0], Y: sz[1]})
	oly.io.SetDeltaTime(deltaTime)

	imgui.NewFrame()
	oly.draw(info)
	imgui.Render()

	oly.rnd.Render(sz, sz, imgui.RenderedDrawData())
}

func (oly *Overlay) draw(info Info) {
	imgui.SetNextWindowPos(imgui.Vec2{X: padding, Y: padding})
	imgui.SetNextWindowBgAlpha(0.6)
	imgui.BeginV("##rateOverlay", nil, imgui.WindowFlagsAlwaysAutoResize|
		imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|
		imgui.WindowFlagsNoDecoration|imgui.WindowFlagsNoSavedSettings|
		imgui.WindowFlagsNoBringToFrontOnFocus|imgui.WindowFlagsNoMove)
	defer imgui.End()

	imgui.PushStyleColor(imgui.StyleColorText, colText)
	imgui.Text(fmt.Sprintf("%03.2f fps", info.FPS))
	imgui.PopStyleColor()

	if info.VSync {
		imgui.PushStyleColor(imgui.StyleColorText, colOn)
		imgui.Text(fmt.Sprintf("vsync on (%s)", info.Mode))
	} else {
		imgui.PushStyleColor(imgui.StyleColorText, colOff)
		imgui.Text(fmt.Sprintf("vsync off (%s)", info.Mode))
	}
	imgui.PopStyleColor()

	imgui.PushStyleColor(imgui.StyleColorText, colFaint)
	imgui.Text(fmt.Sprintf("frame %d", info.Frame))
	if info.Mode == vsync.Auto {
		imgui.Text(fmt.Sprintf("consecutive %d", info.Consecutive))
	}
	imgui.PopStyleColor()
}
