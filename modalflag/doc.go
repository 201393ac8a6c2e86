// This file is part of vm6502.
//
// vm6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vm6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vm6502.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to command line parsing.
//
// A mode is a word on the command line that selects a behaviour for the
// program. Each mode has its own set of flags. For example:
//
//	vm6502 RUN -origin 0x1000 program.bin
//	vm6502 DISPLAY -scale 8 program.bin
//
// The first listed sub-mode is the default and is selected if the first
// argument does not name a sub-mode.
//
// Usage of the package is: call NewArgs() with the command line arguments,
// list the sub-modes with AddSubModes(), add flags with the AddBool() etc.
// functions and then call Parse(). The selected mode is returned by Mode().
// For the next level of modes call NewMode() and repeat.
package modalflag
