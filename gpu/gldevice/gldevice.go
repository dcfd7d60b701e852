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

// Package gldevice implements gpu.Device with OpenGL 2.1. A GL context must be
// current on the calling thread before New() is called and for every method
// call thereafter.
package gldevice

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/logger"
)

// Device implements the gpu.Device interface.
type Device struct {
	caps gpu.Capabilities
}

// New initialises the GL bindings and queries the capabilities of the
// current context.
func New() (*Device, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gldevice: %w", err)
	}

	dev := &Device{}

	dev.caps.Vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	dev.caps.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	driver := gl.GoStr(gl.GetString(gl.VERSION))

	logger.Logf(logger.Allow, "gldevice", "vendor: %s", dev.caps.Vendor)
	logger.Logf(logger.Allow, "gldevice", "renderer: %s", dev.caps.Renderer)
	logger.Logf(logger.Allow, "gldevice", "driver: %s", driver)

	dev.caps.Major, dev.caps.Minor = parseVersion(driver)

	extensions := gl.GoStr(gl.GetString(gl.EXTENSIONS))
	dev.caps.Framebuffers = dev.caps.Major >= 3 || hasFramebufferExtension(extensions)

	return dev, nil
}

// parseVersion extracts the major and minor numbers from a GL_VERSION string.
// Vendor information follows the numbers and is ignored.
func parseVersion(driver string) (int, int) {
	var major, minor int
	_, _ = fmt.Sscanf(driver, "%d.%d", &major, &minor)
	return major, minor
}

func hasFramebufferExtension(extensions string) bool {
	for _, ext := range strings.Fields(extensions) {
		switch ext {
		case "GL_ARB_framebuffer_object", "GL_EXT_framebuffer_object":
			return true
		}
	}
	return false
}

func target(kind gpu.Kind) uint32 {
	switch kind {
	case gpu.KindTexture1D:
		return gl.TEXTURE_1D
	case gpu.KindTexture2D:
		return gl.TEXTURE_2D
	}
	return gl.FRAMEBUFFER
}

func binding(kind gpu.Kind) uint32 {
	switch kind {
	case gpu.KindTexture1D:
		return gl.TEXTURE_BINDING_1D
	case gpu.KindTexture2D:
		return gl.TEXTURE_BINDING_2D
	}
	return gl.FRAMEBUFFER_BINDING
}

// Generate implements the gpu.Device interface.
func (dev *Device) Generate(kind gpu.Kind) uint32 {
	var id uint32
	if kind == gpu.KindFramebuffer {
		gl.GenFramebuffers(1, &id)
	} else {
		gl.GenTextures(1, &id)
	}
	return id
}

// Delete implements the gpu.Device interface.
func (dev *Device) Delete(kind gpu.Kind, id uint32) {
	if kind == gpu.KindFramebuffer {
		gl.DeleteFramebuffers(1, &id)
	} else {
		gl.DeleteTextures(1, &id)
	}
}

// Bind implements the gpu.Device interface.
func (dev *Device) Bind(kind gpu.Kind, id uint32) {
	if kind == gpu.KindFramebuffer {
		gl.BindFramebuffer(gl.FRAMEBUFFER, id)
	} else {
		gl.BindTexture(target(kind), id)
	}
}

// Bound implements the gpu.Device interface.
func (dev *Device) Bound(kind gpu.Kind) uint32 {
	var id int32
	gl.GetIntegerv(binding(kind), &id)
	return uint32(id)
}

// IsObject implements the gpu.Device interface.
func (dev *Device) IsObject(kind gpu.Kind, id uint32) bool {
	if kind == gpu.KindFramebuffer {
		return gl.IsFramebuffer(id)
	}
	return gl.IsTexture(id)
}

// ActiveTexture implements the gpu.Device interface.
func (dev *Device) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func formats(format gpu.TextureFormat) (int32, uint32, uint32, error) {
	switch format {
	case gpu.FormatColorRGBA:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, nil
	case gpu.FormatDepthStencil:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, nil
	}
	return 0, 0, 0, format.Check()
}

// TexImage implements the gpu.Device interface.
func (dev *Device) TexImage(kind gpu.Kind, format gpu.TextureFormat, width int32, height int32, data []byte) error {
	internal, pixelFormat, pixelType, err := formats(format)
	if err != nil {
		return err
	}

	var pixels unsafe.Pointer
	if len(data) > 0 {
		pixels = gl.Ptr(data)
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	switch kind {
	case gpu.KindTexture1D:
		gl.TexImage1D(gl.TEXTURE_1D, 0, internal, width, 0, pixelFormat, pixelType, pixels)
	case gpu.KindTexture2D:
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, width, height, 0, pixelFormat, pixelType, pixels)
	default:
		return fmt.Errorf("gldevice: %s is not a texture kind", kind)
	}

	return nil
}

// TexFilter implements the gpu.Device interface.
func (dev *Device) TexFilter(kind gpu.Kind, filter gpu.TextureFilter) error {
	var f int32
	switch filter {
	case gpu.FilterNearest:
		f = gl.NEAREST
	case gpu.FilterLinear:
		f = gl.LINEAR
	default:
		return filter.Check()
	}

	t := target(kind)
	gl.TexParameteri(t, gl.TEXTURE_MAG_FILTER, f)
	gl.TexParameteri(t, gl.TEXTURE_MIN_FILTER, f)
	gl.TexParameteri(t, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	if kind == gpu.KindTexture2D {
		gl.TexParameteri(t, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	}

	return nil
}

// TexSize implements the gpu.Device interface.
func (dev *Device) TexSize(kind gpu.Kind) (int32, int32) {
	var width, height int32
	t := target(kind)
	gl.GetTexLevelParameteriv(t, 0, gl.TEXTURE_WIDTH, &width)
	gl.GetTexLevelParameteriv(t, 0, gl.TEXTURE_HEIGHT, &height)
	return width, height
}

// TexPixels implements the gpu.Device interface.
func (dev *Device) TexPixels(kind gpu.Kind, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(target(kind), 0, gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}

// DrawQuad implements the gpu.Device interface. The quad fills the viewport.
// Fixed function state that would alter the texture color is disabled for
// the duration of the draw.
func (dev *Device) DrawQuad(width int32, height int32) {
	var u0, u1, v0, v1 float32 = 0, 1, 0, 1
	if width < 0 {
		u0, u1 = 1, 0
		width = -width
	}
	if height < 0 {
		v0, v1 = 1, 0
		height = -height
	}

	gl.PushAttrib(gl.ENABLE_BIT)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.ALPHA_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.TEXTURE_2D)

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), 0, float64(height), -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	w := float32(width)
	h := float32(height)

	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(u0, v0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(u1, v0)
	gl.Vertex2f(w, 0)
	gl.TexCoord2f(u1, v1)
	gl.Vertex2f(w, h)
	gl.TexCoord2f(u0, v1)
	gl.Vertex2f(0, h)
	gl.End()

	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
}

// AttachColor implements the gpu.Device interface.
func (dev *Device) AttachColor(tex uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
}

// AttachDepthStencil implements the gpu.Device interface.
func (dev *Device) AttachDepthStencil(tex uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.TEXTURE_2D, tex, 0)
}

// FramebufferComplete implements the gpu.Device interface.
func (dev *Device) FramebufferComplete() bool {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		logger.Logf(logger.Allow, "gldevice", "framebuffer status: %#x", status)
		return false
	}
	return true
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(width int32, height int32, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}

// CompileProgram implements the gpu.Device interface.
func (dev *Device) CompileProgram(vertex string, fragment string) (uint32, error) {
	vert, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, fmt.Errorf("gldevice: vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, fmt.Errorf("gldevice: fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("gldevice: link: %s", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()

	gl.CompileShader(shader)

	var compiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformInt implements the gpu.Device interface.
func (dev *Device) UniformInt(program uint32, name string, v int32) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return
	}
	gl.Uniform1i(loc, v)
}

// UniformVec2 implements the gpu.Device interface.
func (dev *Device) UniformVec2(program uint32, name string, x float32, y float32) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return
	}
	gl.Uniform2f(loc, x, y)
}

// Capabilities implements the gpu.Device interface.
func (dev *Device) Capabilities() gpu.Capabilities {
	return dev.caps
}
