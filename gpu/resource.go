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

import "fmt"

// Policy decides what happens to the binding slot when a Resource is
// released.
type Policy int

// List of valid Policy values.
const (
	// NoRelease leaves the resource bound. Used for resources whose binding
	// is managed by a parent, such as textures attached to a render target.
	NoRelease Policy = iota

	// ReleaseToDefault binds the null object.
	ReleaseToDefault

	// ReleaseToPrevious binds the object that was bound immediately before
	// the matching Acquire().
	ReleaseToPrevious
)

func (p Policy) String() string {
	switch p {
	case NoRelease:
		return "no release"
	case ReleaseToDefault:
		return "release to default"
	case ReleaseToPrevious:
		return "release to previous"
	}
	return fmt.Sprintf("unknown policy (%d)", int(p))
}

// Resource is the exclusive owner of a single GPU object.
type Resource struct {
	dev    Device
	kind   Kind
	policy Policy
	id     uint32

	// bindings in effect before each outstanding Acquire(). only used by the
	// ReleaseToPrevious policy
	previous []uint32
}

// NewResource allocates a new GPU object of the specified kind.
func NewResource(dev Device, kind Kind, policy Policy) *Resource {
	return &Resource{
		dev:    dev,
		kind:   kind,
		policy: policy,
		id:     dev.Generate(kind),
	}
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s %d (%s)", r.kind, r.id, r.policy)
}

// ID returns the handle of the GPU object. Zero if the resource has been
// destroyed.
func (r *Resource) ID() uint32 {
	return r.id
}

// Kind returns the category of the resource.
func (r *Resource) Kind() Kind {
	return r.kind
}

// Policy returns the release policy of the resource.
func (r *Resource) Policy() Policy {
	return r.policy
}

// Acquire binds the resource into the binding slot for its kind.
func (r *Resource) Acquire() {
	if r.id == 0 {
		return
	}

	bound := r.dev.Bound(r.kind)

	if r.policy == ReleaseToPrevious {
		r.previous = append(r.previous, bound)
	}

	if bound != r.id {
		r.dev.Bind(r.kind, r.id)
	}
}

// Release the binding slot according to the resource's policy. For the
// ReleaseToPrevious policy, a Release() without a matching Acquire() binds
// the null object, as does a Release() where the previous object has since
// been deleted.
func (r *Resource) Release() {
	switch r.policy {
	case NoRelease:
	case ReleaseToDefault:
		r.dev.Bind(r.kind, 0)
	case ReleaseToPrevious:
		var prev uint32
		if n := len(r.previous); n > 0 {
			prev = r.previous[n-1]
			r.previous = r.previous[:n-1]
		}
		if prev != 0 && !r.dev.IsObject(r.kind, prev) {
			prev = 0
		}
		if r.dev.Bound(r.kind) != prev {
			r.dev.Bind(r.kind, prev)
		}
	}
}

// Active returns true if the resource is in the binding slot for its kind.
func (r *Resource) Active() bool {
	return r.id != 0 && r.dev.Bound(r.kind) == r.id
}

// Destroy deletes the GPU object. The binding slot is never left referring
// to the deleted object. It is safe to call Destroy() more than once.
func (r *Resource) Destroy() {
	if r.id == 0 {
		return
	}

	if r.dev.Bound(r.kind) == r.id {
		var prev uint32
		for i := len(r.previous) - 1; i >= 0; i-- {
			if r.previous[i] != r.id && r.dev.IsObject(r.kind, r.previous[i]) {
				prev = r.previous[i]
				break
			}
		}
		r.dev.Bind(r.kind, prev)
	}
	r.previous = r.previous[:0]

	r.dev.Delete(r.kind, r.id)
	r.id = 0
}
