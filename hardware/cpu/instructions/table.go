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

// the official opcodes. each entry is an opcode and the addressing mode it
// uses, listed by operator
var matrix = map[Operator][]struct {
	opcode uint8
	mode   AddressingMode
}{
	Adc: {{0x69, Immediate}, {0x65, ZeroPage}, {0x75, ZeroPageX}, {0x6d, Absolute}, {0x7d, AbsoluteX}, {0x79, AbsoluteY}, {0x61, IndexedIndirect}, {0x71, IndirectIndexed}},
	And: {{0x29, Immediate}, {0x25, ZeroPage}, {0x35, ZeroPageX}, {0x2d, Absolute}, {0x3d, AbsoluteX}, {0x39, AbsoluteY}, {0x21, IndexedIndirect}, {0x31, IndirectIndexed}},
	Asl: {{0x0a, Accumulator}, {0x06, ZeroPage}, {0x16, ZeroPageX}, {0x0e, Absolute}, {0x1e, AbsoluteX}},
	Bcc: {{0x90, Relative}},
	Bcs: {{0xb0, Relative}},
	Beq: {{0xf0, Relative}},
	Bit: {{0x24, ZeroPage}, {0x2c, Absolute}},
	Bmi: {{0x30, Relative}},
	Bne: {{0xd0, Relative}},
	Bpl: {{0x10, Relative}},
	Brk: {{0x00, Implied}},
	Bvc: {{0x50, Relative}},
	Bvs: {{0x70, Relative}},
	Clc: {{0x18, Implied}},
	Cld: {{0xd8, Implied}},
	Cli: {{0x58, Implied}},
	Clv: {{0xb8, Implied}},
	Cmp: {{0xc9, Immediate}, {0xc5, ZeroPage}, {0xd5, ZeroPageX}, {0xcd, Absolute}, {0xdd, AbsoluteX}, {0xd9, AbsoluteY}, {0xc1, IndexedIndirect}, {0xd1, IndirectIndexed}},
	Cpx: {{0xe0, Immediate}, {0xe4, ZeroPage}, {0xec, Absolute}},
	Cpy: {{0xc0, Immediate}, {0xc4, ZeroPage}, {0xcc, Absolute}},
	Dec: {{0xc6, ZeroPage}, {0xd6, ZeroPageX}, {0xce, Absolute}, {0xde, AbsoluteX}},
	Dex: {{0xca, Implied}},
	Dey: {{0x88, Implied}},
	Eor: {{0x49, Immediate}, {0x45, ZeroPage}, {0x55, ZeroPageX}, {0x4d, Absolute}, {0x5d, AbsoluteX}, {0x59, AbsoluteY}, {0x41, IndexedIndirect}, {0x51, IndirectIndexed}},
	Inc: {{0xe6, ZeroPage}, {0xf6, ZeroPageX}, {0xee, Absolute}, {0xfe, AbsoluteX}},
	Inx: {{0xe8, Implied}},
	Iny: {{0xc8, Implied}},
	Jmp: {{0x4c, Absolute}, {0x6c, Indirect}},
	Jsr: {{0x20, Absolute}},
	Lda: {{0xa9, Immediate}, {0xa5, ZeroPage}, {0xb5, ZeroPageX}, {0xad, Absolute}, {0xbd, AbsoluteX}, {0xb9, AbsoluteY}, {0xa1, IndexedIndirect}, {0xb1, IndirectIndexed}},
	Ldx: {{0xa2, Immediate}, {0xa6, ZeroPage}, {0xb6, ZeroPageY}, {0xae, Absolute}, {0xbe, AbsoluteY}},
	Ldy: {{0xa0, Immediate}, {0xa4, ZeroPage}, {0xb4, ZeroPageX}, {0xac, Absolute}, {0xbc, AbsoluteX}},
	Lsr: {{0x4a, Accumulator}, {0x46, ZeroPage}, {0x56, ZeroPageX}, {0x4e, Absolute}, {0x5e, AbsoluteX}},
	Nop: {{0xea, Implied}},
	Ora: {{0x09, Immediate}, {0x05, ZeroPage}, {0x15, ZeroPageX}, {0x0d, Absolute}, {0x1d, AbsoluteX}, {0x19, AbsoluteY}, {0x01, IndexedIndirect}, {0x11, IndirectIndexed}},
	Pha: {{0x48, Implied}},
	Php: {{0x08, Implied}},
	Pla: {{0x68, Implied}},
	Plp: {{0x28, Implied}},
	Rol: {{0x2a, Accumulator}, {0x26, ZeroPage}, {0x36, ZeroPageX}, {0x2e, Absolute}, {0x3e, AbsoluteX}},
	Ror: {{0x6a, Accumulator}, {0x66, ZeroPage}, {0x76, ZeroPageX}, {0x6e, Absolute}, {0x7e, AbsoluteX}},
	Rti: {{0x40, Implied}},
	Rts: {{0x60, Implied}},
	Sbc: {{0xe9, Immediate}, {0xe5, ZeroPage}, {0xf5, ZeroPageX}, {0xed, Absolute}, {0xfd, AbsoluteX}, {0xf9, AbsoluteY}, {0xe1, IndexedIndirect}, {0xf1, IndirectIndexed}},
	Sec: {{0x38, Implied}},
	Sed: {{0xf8, Implied}},
	Sei: {{0x78, Implied}},
	Sta: {{0x85, ZeroPage}, {0x95, ZeroPageX}, {0x8d, Absolute}, {0x9d, AbsoluteX}, {0x99, AbsoluteY}, {0x81, IndexedIndirect}, {0x91, IndirectIndexed}},
	Stx: {{0x86, ZeroPage}, {0x96, ZeroPageY}, {0x8e, Absolute}},
	Sty: {{0x84, ZeroPage}, {0x94, ZeroPageX}, {0x8c, Absolute}},
	Tax: {{0xaa, Implied}},
	Tay: {{0xa8, Implied}},
	Tsx: {{0xba, Implied}},
	Txa: {{0x8a, Implied}},
	Txs: {{0x9a, Implied}},
	Tya: {{0x98, Implied}},
}
