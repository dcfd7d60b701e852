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

// Package modalflag wraps the flag package from the standard library so that
// a program can have modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed one mode at a time. Flags
// for the current mode are added and then Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	logging := md.AddBool("log", false, "echo log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse(), Mode() is the selected sub-mode. The first sub-mode is the
// default and is selected if the first argument after the flags is not the
// name of a sub-mode. Sub-mode names are case insensitive.
//
// Flags for the selected mode can then be added after a call to NewMode(),
// followed by another call to Parse(). Path() returns all the modes selected
// so far, separated by a slash.
package modalflag
