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

// Package disassembly decodes a region of memory into a list of
// instructions. It uses the opcode table in the cpu/instructions package and
// has no knowledge of the flow of the program. Every entry is decoded as
// though the preceding entry was a valid instruction.
//
// Bytes that are not opcodes are disassembled as data.
package disassembly
