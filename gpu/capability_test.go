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

package gpu_test

import (
	"strings"
	"testing"

	"github.com/macdoom/backbuffer/gpu"
	"github.com/macdoom/backbuffer/gpu/softgpu"
	"github.com/macdoom/backbuffer/test"
)

func TestCapabilities(t *testing.T) {
	dev := softgpu.NewDevice(4, 4)

	test.ExpectSuccess(t, gpu.CheckCapabilities(dev, 0, 0))
	test.ExpectSuccess(t, gpu.CheckCapabilities(dev, 2, 1))

	err := gpu.CheckCapabilities(dev, 3, 2)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "OpenGL 3.2"))

	dev.Caps.Framebuffers = false
	err = gpu.CheckCapabilities(dev, 0, 0)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "Frame Buffer Object (FBO)"))
}
