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

package cpu_test

import (
	"testing"

	"github.com/vm6502/vm6502/hardware/cpu"
	"github.com/vm6502/vm6502/test"
)

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)

	// LDX #$ff; TXS; LDA #$42; PHA; LDA #$00; PLA
	mem.putInstructions(0x8000, 0xa2, 0xff, 0x9a, 0xa9, 0x42, 0x48)
	run(t, mc, mem, 4)
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x42))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	mem.putInstructions(0x8006, 0xa9, 0x00, 0x68)
	run(t, mc, mem, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	// SEC; PHP; CLC; PLP. the break flag is set on the stack but not in the
	// register
	mem.putInstructions(0x8009, 0x38, 0x08, 0x18, 0x28)
	run(t, mc, mem, 4)
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x31))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)
	mc.SP.Load(0xff)

	// JSR $9000; ... RTS
	mem.putInstructions(0x8000, 0x20, 0x00, 0x90)
	mem.putInstructions(0x9000, 0x60)

	test.ExpectEquality(t, step(t, mc, mem), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x02))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	test.ExpectEquality(t, step(t, mc, mem), 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestJump(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)

	// JMP $9000
	mem.putInstructions(0x8000, 0x4c, 0x00, 0x90)
	step(t, mc, mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))

	// JMP ($10ff) reads the high byte from $1000
	mem.data[0x10ff] = 0x34
	mem.data[0x1000] = 0x12
	mem.data[0x1100] = 0x56
	mem.putInstructions(0x9000, 0x6c, 0xff, 0x10)
	test.ExpectEquality(t, step(t, mc, mem), 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
}

func TestBranch(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)

	// LDA #$00; BNE +4; BEQ +4
	mem.putInstructions(0x8000, 0xa9, 0x00, 0xd0, 0x04, 0xf0, 0x04)
	run(t, mc, mem, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8004))
	step(t, mc, mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x800a))

	// BEQ -2 branches to itself
	mem.putInstructions(0x800a, 0xf0, 0xfe)
	step(t, mc, mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x800a))
}

func TestBreak(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)
	mc.SP.Load(0xff)

	mem.data[0xfffe] = 0x00
	mem.data[0xffff] = 0x90

	// BRK; ... RTI
	mem.putInstructions(0x8000, 0x00)
	mem.putInstructions(0x9000, 0x40)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x02))
	test.ExpectEquality(t, mem.data[0x01fd], uint8(0x30))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	step(t, mc, mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
}

func TestIncDec(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(newPrefs(t, 0x8000, true), nil)

	// INC $10; DEC $10; DEC $10
	mem.data[0x0010] = 0xff
	mem.putInstructions(0x8000, 0xe6, 0x10, 0xc6, 0x10, 0xc6, 0x10)

	test.ExpectEquality(t, step(t, mc, mem), 3)
	test.ExpectEquality(t, mem.data[0x0010], uint8(0x00))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZc")

	step(t, mc, mem)
	test.ExpectEquality(t, mem.data[0x0010], uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")

	step(t, mc, mem)
	test.ExpectEquality(t, mem.data[0x0010], uint8(0xfe))
}
