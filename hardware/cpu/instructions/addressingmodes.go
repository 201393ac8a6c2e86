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

package instructions

// AddressingMode describes the method by which an instruction's data is
// found.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage        // zp
	ZeroPageX       // zp,X
	ZeroPageY       // zp,Y
	Absolute        // abs
	AbsoluteX       // abs,X
	AbsoluteY       // abs,Y
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	Relative        // branch instructions only
	Indirect        // JMP only

	numAddressingModes
)

// AddressingModes is the list of every addressing mode, in order.
var AddressingModes = [...]AddressingMode{
	Implied, Accumulator, Immediate,
	ZeroPage, ZeroPageX, ZeroPageY,
	Absolute, AbsoluteX, AbsoluteY,
	IndexedIndirect, IndirectIndexed,
	Relative, Indirect,
}

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Relative:
		return "Relative"
	case Indirect:
		return "Indirect"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes used by an instruction with the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 2
}

// Cycles returns the number of ticks required by an instruction with the
// addressing mode, including the tick that fetches the opcode.
//
// Unlike the 6502 the count does not depend on the instruction or whether
// an indexed address crosses a page boundary.
func (m AddressingMode) Cycles() int {
	switch m {
	case Implied, Accumulator, Immediate, Relative:
		return 2
	case ZeroPage:
		return 3
	case ZeroPageX, ZeroPageY, Absolute, AbsoluteX, AbsoluteY:
		return 4
	case IndirectIndexed, Indirect:
		return 5
	case IndexedIndirect:
		return 6
	}
	return 0
}
