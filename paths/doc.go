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

// Package paths prepares paths to the resources used by the backbuffer demo
// program, such as the preferences file and screenshots.
//
// The ResourcePath() function prepends the resource with the base resource
// directory. If a directory named ".backbuffer" is present in the program's
// current directory then that is the base path. Otherwise, the "backbuffer"
// directory in the user's config directory is used (see os.UserConfigDir()).
//
// For example, on a Linux system without a local ".backbuffer" directory:
//
//	p, _ := paths.ResourcePath("", "preferences")
//
// returns:
//
//	/home/user/.config/backbuffer/preferences
//
// The directory part of the path is created if it does not exist.
package paths
