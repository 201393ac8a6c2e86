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

// Package cpu emulates the 6502 microprocessor. The CPU advances by one
// micro-step every time Tick() is called. The first micro-step of every
// instruction is the fetch of the opcode. The remaining micro-steps depend
// on the addressing mode of the instruction and are listed in the
// sequences table in addressing.go.
//
// The CPU is given the memory for the duration of a call to Tick(). Any type
// that satisfies the Memory interface will do but in practice it is the
// MemManager type in the memory package.
//
// Instructions that the emulation does not yet implement are decoded and
// take the correct number of ticks but have no effect. A NotYetImplemented
// notification is raised instead. The Experimental preference in the
// hardware/preferences package gives those instructions their full
// behaviour.
package cpu
