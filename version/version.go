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

// Package version reports the name and version of the application. The
// version number is set at link time by the release build:
//
//	go build -ldflags "-X github.com/macdoom/backbuffer/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Backbuffer"

// if number is empty then the project was not built with the release
// ldflags
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// If the version string is "unreleased" then the project has been built
// from a repository without a version number. If the version string is
// "local" then there is no version number and no vcs information, which
// happens with "go run .".
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name and version in a form suitable for a
// window title.
func String() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	var vcs bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		var modified bool
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		if modified && revision != "" {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if revision == "" {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
