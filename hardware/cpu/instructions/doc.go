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

// Package instructions defines the instruction set of the 6502. Every
// official opcode is described by a Definition. The table of definitions is
// the matrix of Operator and AddressingMode: combinations that do not exist
// on the 6502 have no opcode.
//
// Encode() and Decode() are inverse functions over the matrix:
//
//	opcode, err := instructions.Encode(instructions.Lda, instructions.Immediate)
//	defn, err := instructions.Decode(opcode)
package instructions
