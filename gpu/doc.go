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

// Package gpu wraps the GPU objects needed by the backbuffer: textures and
// framebuffers. Every object is owned by exactly one Resource, which binds
// the object into the device's binding slot for its Kind on Acquire() and
// restores the slot according to its Policy on Release().
//
// The package never calls OpenGL directly. All work is done through the
// Device interface, of which there are two implementations: gldevice, which
// is backed by OpenGL 2.1, and softgpu, which keeps everything in memory and
// is used for testing and for headless operation.
//
// The binding model is that of OpenGL: there is a single binding slot per
// Kind (per texture unit for textures). Two resources of the same Kind
// should not be active at the same time unless their acquire/release pairs
// are properly nested. Resources with the ReleaseToPrevious policy restore
// exactly the binding that was in effect before the matching Acquire(), no
// matter how deep the nesting.
//
// Allocation failures are not reported. OpenGL does not signal them
// synchronously and they surface later as incorrect drawing.
package gpu
