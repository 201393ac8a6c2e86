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
	"fmt"

	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/hardware/cpu/registers"
	"github.com/vm6502/vm6502/notifications"
)

// operate performs the operation of the instruction in flight. The value
// argument is the operand, or the value read from memory for Read and RMW
// instructions.
//
// The returned value is the value to be written to memory. The boolean is
// true if the value should be written.
func (mc *CPU) operate(mem Memory, value uint8) (uint8, bool, error) {
	switch mc.progress.defn.Operator {
	case instructions.Nop:

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld, instructions.Sed:
		return 0, false, mc.raise(notifications.NotifyUnimplementedFeature, "not implemented: Decimal Mode")
	case instructions.Cli, instructions.Sei:
		return 0, false, mc.raise(notifications.NotifyUnsupportedFeature, "not supported: Interrupts")

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		return mc.A.Value(), true, nil
	case instructions.Stx:
		return mc.X.Value(), true, nil
	case instructions.Sty:
		return mc.Y.Value(), true, nil

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)
	case instructions.Txs:
		// no flags are affected
		mc.SP.Load(mc.X.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)
	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)
	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Overflow = value&0x40 == 0x40
		mc.Status.Sign = value&0x80 == 0x80

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setZN(mc.A)
	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setZN(mc.A)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Inx:
		mc.X.Increment()
		mc.setZN(mc.X)
	case instructions.Iny:
		mc.Y.Increment()
		mc.setZN(mc.Y)
	case instructions.Dex:
		mc.X.Decrement()
		mc.setZN(mc.X)
	case instructions.Dey:
		mc.Y.Decrement()
		mc.setZN(mc.Y)

	case instructions.Asl:
		r := mc.shiftTarget(value)
		mc.Status.Carry = r.ASL()
		return mc.shifted(r)
	case instructions.Lsr:
		r := mc.shiftTarget(value)
		mc.Status.Carry = r.LSR()
		return mc.shifted(r)
	case instructions.Rol:
		r := mc.shiftTarget(value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		return mc.shifted(r)
	case instructions.Ror:
		r := mc.shiftTarget(value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		return mc.shifted(r)

	default:
		if mc.stubbed() {
			return 0, false, mc.raise(notifications.NotifyNotYetImplemented,
				fmt.Sprintf("not yet implemented: %s", mc.progress.defn.Operator))
		}
		return mc.extended(mem, value)
	}

	return 0, false, nil
}

// stubbed returns true if the instruction in flight has no effect.
func (mc *CPU) stubbed() bool {
	if mc.progress.experimental {
		return false
	}
	switch mc.progress.defn.Operator {
	case instructions.Inc, instructions.Dec,
		instructions.Pha, instructions.Php, instructions.Pla, instructions.Plp,
		instructions.Jmp, instructions.Jsr, instructions.Rts,
		instructions.Bcc, instructions.Bcs, instructions.Beq, instructions.Bmi,
		instructions.Bne, instructions.Bpl, instructions.Bvc, instructions.Bvs,
		instructions.Brk, instructions.Rti:
		return true
	}
	return false
}

func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// compare sets the carry if the register is greater than or equal to the
// value. an equal comparison always clears the sign flag. otherwise the sign
// flag is taken from the register and not from the difference.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.Status.Carry = r.Value() >= value
	if r.Value() == value {
		mc.Status.Zero = true
		mc.Status.Sign = false
		return
	}
	mc.Status.Zero = false
	mc.Status.Sign = r.IsNegative()
}

// shiftTarget returns the register that the shift and rotate instructions
// act on. for memory modes that is the alu, loaded with the value.
func (mc *CPU) shiftTarget(value uint8) *registers.Register {
	if !mc.progress.targetIsMem {
		return &mc.A
	}
	mc.alu.Load(value)
	return &mc.alu
}

func (mc *CPU) shifted(r *registers.Register) (uint8, bool, error) {
	// zero and negative come from the shifted value, not the accumulator,
	// even when the target is memory
	mc.setZN(*r)
	return r.Value(), mc.progress.targetIsMem, nil
}
