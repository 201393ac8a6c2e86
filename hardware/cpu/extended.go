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

package cpu

import (
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
)

// the stack occupies page one of memory.
const stackPage = 0x0100

// address of the interrupt vector used by BRK.
const brkVector = 0xfffe

// extended performs the instructions enabled by the Experimental preference.
// Stack accesses happen inside the final micro-step of the instruction so
// the tick count is that of the addressing mode.
func (mc *CPU) extended(mem Memory, value uint8) (uint8, bool, error) {
	switch mc.progress.defn.Operator {
	case instructions.Inc:
		mc.alu.Load(value)
		mc.alu.Increment()
		mc.setZN(mc.alu)
		return mc.alu.Value(), true, nil
	case instructions.Dec:
		mc.alu.Load(value)
		mc.alu.Decrement()
		mc.setZN(mc.alu)
		return mc.alu.Value(), true, nil

	case instructions.Pha:
		mc.push(mem, mc.A.Value())
	case instructions.Php:
		mc.push(mem, mc.Status.Value()|0x10)
	case instructions.Pla:
		mc.A.Load(mc.pull(mem))
		mc.setZN(mc.A)
	case instructions.Plp:
		mc.Status.FromValue(mc.pull(mem))
		mc.Status.Break = false

	case instructions.Jmp:
		mc.PC.Load(mc.address)
	case instructions.Jsr:
		mc.pushAddress(mem, mc.PC.Address()-1)
		mc.PC.Load(mc.address)
	case instructions.Rts:
		mc.PC.Load(mc.pullAddress(mem) + 1)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)
	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)
	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Brk:
		// the byte after BRK is skipped
		mc.PC.Increment()
		mc.pushAddress(mem, mc.PC.Address())
		mc.push(mem, mc.Status.Value()|0x10)
		mc.Status.InterruptDisable = true
		lo := mc.read(mem, brkVector)
		hi := mc.read(mem, brkVector+1)
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	case instructions.Rti:
		mc.Status.FromValue(mc.pull(mem))
		mc.Status.Break = false
		mc.PC.Load(mc.pullAddress(mem))
	}

	return 0, false, nil
}

// push writes to the stack and then decrements the stack pointer.
func (mc *CPU) push(mem Memory, data uint8) {
	mc.write(mem, stackPage|mc.SP.Address(), data)
	mc.SP.Decrement()
}

// pull increments the stack pointer and then reads from the stack.
func (mc *CPU) pull(mem Memory) uint8 {
	mc.SP.Increment()
	return mc.read(mem, stackPage|mc.SP.Address())
}

// the high byte is pushed first.
func (mc *CPU) pushAddress(mem Memory, address uint16) {
	mc.push(mem, uint8(address>>8))
	mc.push(mem, uint8(address))
}

func (mc *CPU) pullAddress(mem Memory) uint16 {
	lo := mc.pull(mem)
	hi := mc.pull(mem)
	return uint16(hi)<<8 | uint16(lo)
}

// branch adds the signed displacement to the PC if the condition is true.
func (mc *CPU) branch(condition bool, displacement uint8) {
	if condition {
		mc.PC.Add(uint16(int16(int8(displacement))))
	}
}
