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

// Package registers implements the three types of register found in the 6502
// family: the 8 bit Register used for A, X, Y and SP, the ProgramCounter and
// the StatusRegister.
//
// The arithmetic functions of the Register type return the carry and
// overflow conditions. It is up to the caller to apply them to the status
// register. For example:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
package registers
