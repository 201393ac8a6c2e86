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

// microStep is a single tick of an instruction after the fetch.
type microStep func(mc *CPU, mem Memory) error

// sequences lists the micro-steps for each addressing mode. The final entry
// of each sequence performs the operation.
var sequences = map[instructions.AddressingMode][]microStep{
	instructions.Implied:         {(*CPU).execImplied},
	instructions.Accumulator:     {(*CPU).execImplied},
	instructions.Immediate:       {(*CPU).execImmediate},
	instructions.Relative:        {(*CPU).execImmediate},
	instructions.ZeroPage:        {(*CPU).operandLo, (*CPU).execMemory},
	instructions.ZeroPageX:       {(*CPU).operandLo, (*CPU).zeroPageX, (*CPU).execMemory},
	instructions.ZeroPageY:       {(*CPU).operandLo, (*CPU).zeroPageY, (*CPU).execMemory},
	instructions.Absolute:        {(*CPU).operandLo, (*CPU).operandHi, (*CPU).execMemory},
	instructions.AbsoluteX:       {(*CPU).operandLo, (*CPU).operandHiX, (*CPU).execMemory},
	instructions.AbsoluteY:       {(*CPU).operandLo, (*CPU).operandHiY, (*CPU).execMemory},
	instructions.IndexedIndirect: {(*CPU).operandLo, (*CPU).zeroPageX, (*CPU).pointerLo, (*CPU).pointerHi, (*CPU).execMemory},
	instructions.IndirectIndexed: {(*CPU).operandLo, (*CPU).pointerLo, (*CPU).pointerHiY, (*CPU).execMemory},
	instructions.Indirect:        {(*CPU).operandLo, (*CPU).operandHi, (*CPU).indirectLo, (*CPU).execIndirect},
}

// read the byte at the PC into the low byte of the operand latch.
func (mc *CPU) operandLo(mem Memory) error {
	mc.itr = uint16(mc.read(mem, mc.PC.Address()))
	mc.PC.Increment()
	mc.address = mc.itr
	return nil
}

// read the byte at the PC into the high byte of the operand latch.
func (mc *CPU) operandHi(mem Memory) error {
	mc.itr |= uint16(mc.read(mem, mc.PC.Address())) << 8
	mc.PC.Increment()
	mc.address = mc.itr
	return nil
}

func (mc *CPU) operandHiX(mem Memory) error {
	_ = mc.operandHi(mem)
	mc.address += mc.X.Address()
	return nil
}

func (mc *CPU) operandHiY(mem Memory) error {
	_ = mc.operandHi(mem)
	mc.address += mc.Y.Address()
	return nil
}

// index the zero page address. the result does not leave the zero page.
func (mc *CPU) zeroPageX(_ Memory) error {
	mc.address = uint16(uint8(mc.itr) + mc.X.Value())
	return nil
}

func (mc *CPU) zeroPageY(_ Memory) error {
	mc.address = uint16(uint8(mc.itr) + mc.Y.Value())
	return nil
}

// read the low byte of the address pointed to by the zero page pointer.
func (mc *CPU) pointerLo(mem Memory) error {
	mc.ptr = uint8(mc.address)
	mc.address = uint16(mc.read(mem, uint16(mc.ptr)))
	return nil
}

// read the high byte of the address pointed to by the zero page pointer. the
// pointer wraps around the zero page.
func (mc *CPU) pointerHi(mem Memory) error {
	mc.address |= uint16(mc.read(mem, uint16(mc.ptr+1))) << 8
	return nil
}

func (mc *CPU) pointerHiY(mem Memory) error {
	_ = mc.pointerHi(mem)
	mc.address += mc.Y.Address()
	return nil
}

// read the low byte of the indirect address for JMP.
func (mc *CPU) indirectLo(mem Memory) error {
	mc.address = uint16(mc.read(mem, mc.itr))
	return nil
}

// read the high byte of the indirect address for JMP and perform the
// operation. the high byte is read from the same page as the low byte, as it
// is on the 6502.
func (mc *CPU) execIndirect(mem Memory) error {
	hi := (mc.itr & 0xff00) | uint16(uint8(mc.itr)+1)
	mc.address |= uint16(mc.read(mem, hi)) << 8
	_, _, err := mc.operate(mem, 0)
	return err
}

// implied and accumulator instructions have no operand.
func (mc *CPU) execImplied(mem Memory) error {
	_, _, err := mc.operate(mem, 0)
	return err
}

// immediate and relative instructions take the byte at the PC as the
// operand.
func (mc *CPU) execImmediate(mem Memory) error {
	v := mc.read(mem, mc.PC.Address())
	mc.PC.Increment()
	_, _, err := mc.operate(mem, v)
	return err
}

// perform the operation on the effective address. the address is read for
// Read and RMW instructions and the result written for Write and RMW
// instructions.
func (mc *CPU) execMemory(mem Memory) error {
	effect := mc.progress.defn.Effect
	access := !mc.stubbed()

	var v uint8
	if access && (effect == instructions.Read || effect == instructions.RMW) {
		v = mc.read(mem, mc.address)
	}

	result, store, err := mc.operate(mem, v)
	if err != nil {
		return err
	}

	if access && store && (effect == instructions.Write || effect == instructions.RMW) {
		mc.write(mem, mc.address, result)
	}

	return nil
}
