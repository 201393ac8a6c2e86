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

// Package setup prepares a System for use by the host. The device layout of
// the address space is described by a layout string. Each entry in the string
// is separated by a semicolon and has the form:
//
//	kind:origin[:size[:uid]]
//
// Kind is one of ram, rom, screen or ascii. Numbers can be written in decimal
// or, with the 0x prefix, in hex. The size must be omitted (or zero) for the
// fixed sized devices. If the uid is omitted then the kind is used as the uid
// of the first device of that kind.
//
// For example, the DefaultLayout is:
//
//	ram:0x0000:0x1000;rom:0x1000:0x1000
package setup
