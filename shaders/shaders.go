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

// Package shaders contains the GLSL sources used by the backbuffer and a
// small wrapper for compiled shader programs.
package shaders

import _ "embed"

//go:embed "main.vert"
var MainVertexShader []byte

//go:embed "gamma_correction.frag"
var GammaCorrectionShader []byte

//go:embed "fxaa.frag"
var FXAAShader []byte
