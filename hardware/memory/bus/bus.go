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

package bus

import "fmt"

// Bus is the 8 bit data and 16 bit address bus. The zero value is not the
// reset state of the bus. Use Reset() or NewBus().
type Bus struct {
	data uint8
	addr uint16

	// true indicates a read
	rw bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	b := &Bus{}
	b.Reset()
	return b
}

func (b *Bus) String() string {
	rw := "W"
	if b.rw {
		rw = "R"
	}
	return fmt.Sprintf("%04x %02x %s", b.addr, b.data, rw)
}

// Reset bus to data 0x00, address 0x0000 and the read direction.
func (b *Bus) Reset() {
	b.data = 0
	b.addr = 0
	b.rw = true
}

// Data returns the value on the data lines.
func (b *Bus) Data() uint8 {
	return b.data
}

// SetData places a value on the data lines.
func (b *Bus) SetData(data uint8) {
	b.data = data
}

// Addr returns the value on the address lines.
func (b *Bus) Addr() uint16 {
	return b.addr
}

// SetAddr places a value on the address lines.
func (b *Bus) SetAddr(addr uint16) {
	b.addr = addr
}

// SetAddrLo sets the low byte of the address lines, leaving the high byte
// unchanged.
func (b *Bus) SetAddrLo(lo uint8) {
	b.addr = (b.addr & 0xff00) | uint16(lo)
}

// SetAddrHi sets the high byte of the address lines, leaving the low byte
// unchanged.
func (b *Bus) SetAddrHi(hi uint8) {
	b.addr = (b.addr & 0x00ff) | (uint16(hi) << 8)
}

// RW returns true if the bus is in the read direction.
func (b *Bus) RW() bool {
	return b.rw
}

// SetRW sets the direction of the bus. True indicates a read.
func (b *Bus) SetRW(read bool) {
	b.rw = read
}
