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

import (
	"fmt"

	"github.com/vm6502/vm6502/curated"
)

// DecodeError is the pattern for errors returned by Encode() and Decode().
const DecodeError = "decode error: %v"

// Unsupported is the value returned by Lookup() for a combination of
// Operator and AddressingMode that has no opcode.
const Unsupported = -1

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

var definitions [256]*Definition
var opcodes [NumOperators][numAddressingModes]int

func init() {
	for o := range opcodes {
		for m := range opcodes[o] {
			opcodes[o][m] = Unsupported
		}
	}

	for o, entries := range matrix {
		for _, e := range entries {
			if definitions[e.opcode] != nil {
				panic(fmt.Sprintf("instructions: duplicate opcode %02x", e.opcode))
			}
			definitions[e.opcode] = &Definition{
				OpCode:         e.opcode,
				Operator:       o,
				Bytes:          e.mode.Bytes(),
				Cycles:         e.mode.Cycles(),
				AddressingMode: e.mode,
				Effect:         o.Effect(),
			}
			opcodes[o][e.mode] = int(e.opcode)
		}
	}
}

// Lookup returns the opcode for the Operator and AddressingMode, or
// Unsupported if the combination doesn't exist.
func Lookup(o Operator, mode AddressingMode) int {
	if o < 0 || o >= NumOperators || mode < 0 || mode >= numAddressingModes {
		return Unsupported
	}
	return opcodes[o][mode]
}

// Encode returns the opcode for the Operator and AddressingMode.
func Encode(o Operator, mode AddressingMode) (uint8, error) {
	opcode := Lookup(o, mode)
	if opcode == Unsupported {
		return 0, curated.Errorf(DecodeError, fmt.Sprintf("%s does not support %s addressing", o, mode))
	}
	return uint8(opcode), nil
}

// Decode returns the Definition for the opcode.
func Decode(opcode uint8) (*Definition, error) {
	defn := definitions[opcode]
	if defn == nil {
		return nil, curated.Errorf(DecodeError, fmt.Sprintf("undefined opcode (%02x)", opcode))
	}
	return defn, nil
}

// Definitions returns every defined instruction, ordered by opcode.
func Definitions() []*Definition {
	d := make([]*Definition, 0, len(definitions))
	for _, defn := range definitions {
		if defn != nil {
			d = append(d, defn)
		}
	}
	return d
}
