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

package gpu

import (
	"fmt"

	"github.com/macdoom/backbuffer/version"
)

// CheckCapabilities returns an error if the device does not support
// framebuffer objects. If minMajor is greater than zero then the device must
// also support at least version minMajor.minMinor.
//
// These are environment deficiencies. The error should be treated as fatal.
func CheckCapabilities(dev Device, minMajor int, minMinor int) error {
	caps := dev.Capabilities()

	if !caps.Framebuffers {
		return capabilityError("Frame Buffer Object (FBO)")
	}

	if minMajor > 0 {
		if caps.Major < minMajor || (caps.Major == minMajor && caps.Minor < minMinor) {
			return capabilityError(fmt.Sprintf("OpenGL %d.%d", minMajor, minMinor))
		}
	}

	return nil
}

func capabilityError(feature string) error {
	return fmt.Errorf("the graphics hardware in your system does not support %s. "+
		"it is required to run this version of %s. "+
		"you can try the SDL renderer where this feature is not mandatory",
		feature, version.ApplicationName)
}
