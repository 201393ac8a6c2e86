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

package registers

import (
	"fmt"
)

// Register is an 8 bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the register's label.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a 16 bit address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV checks bit 6 of the register.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, with carry. The register holds the wrapped 8 bit
// result.
//
// The returned carry is set when the result, read as a signed 16 bit number,
// lies outside the range -128 to 127. Because the result is an unsigned byte
// this is the same as bit 7 of the result. The returned overflow is set when
// the sign bits of the register and the operand differ.
//
// Neither flag follows the canonical 6502 definition. Programs that depend on
// the canonical behaviour will not run correctly.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	overflow = (r.value^val)&0x80 == 0x80

	r.value += val
	if carry {
		r.value++
	}

	rcarry = outsideSignedByte(r.value)

	return rcarry, overflow
}

// Subtract value from register, with borrow. A clear carry flag indicates a
// borrow. Flags as described for Add().
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	overflow = (r.value^val)&0x80 == 0x80

	r.value -= val
	if !carry {
		r.value--
	}

	rcarry = outsideSignedByte(r.value)

	return rcarry, overflow
}

// the result byte is widened without sign extension so it can never be
// below -128. carry is therefore set whenever the result byte exceeds 127
func outsideSignedByte(v uint8) bool {
	return v > 127
}

// Increment adds one to the register. Wraps at 0xff.
func (r *Register) Increment() {
	r.value++
}

// Decrement subtracts one from the register. Wraps at 0x00.
func (r *Register) Decrement() {
	r.value--
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL shifts register one bit to the left. Returns the most significant bit
// as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR shifts register one bit to the right. Returns the least significant
// bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// ROL rotates register one bit to the left through the carry.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates register one bit to the right through the carry.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
