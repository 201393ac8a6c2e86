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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/vm6502/vm6502/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16

	// the opcode and operand bytes
	Bytes []uint8

	// nil if the byte at Address is not an opcode
	Defn *instructions.Definition

	// the operand of the instruction. for branch instructions this is the
	// address of the branch target
	Operand uint16
}

// Bytecode returns the bytes of the entry as a string of hex digits.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Operator returns the mnemonic of the entry.
func (e Entry) Operator() string {
	if e.Defn == nil {
		return ".byte"
	}
	return e.Defn.Operator.String()
}

// OperandString returns the operand of the entry in assembler notation.
func (e Entry) OperandString() string {
	if e.Defn == nil {
		return fmt.Sprintf("$%02x", e.Bytes[0])
	}

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.Operand)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", e.Operand)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02x,X", e.Operand)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02x,Y", e.Operand)
	case instructions.Absolute, instructions.Relative:
		return fmt.Sprintf("$%04x", e.Operand)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04x,X", e.Operand)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", e.Operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", e.Operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", e.Operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", e.Operand)
	}

	return "?"
}

func (e Entry) String() string {
	return strings.TrimRight(fmt.Sprintf("%04x  %-8s  %s %s", e.Address, e.Bytecode(), e.Operator(), e.OperandString()), " ")
}
