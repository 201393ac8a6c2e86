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

package disassembly

import (
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
)

// Peeker is the view of memory required by the disassembler. Reads must not
// have side effects.
type Peeker interface {
	Peek(address uint16) (uint8, bool)
}

// Disassembly is the list of entries decoded from a region of memory.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles count entries starting at the address. Unmapped
// addresses are decoded as the value returned by Peek().
func FromMemory(mem Peeker, address uint16, count int) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, count),
	}

	peek := func(a uint16) uint8 {
		v, _ := mem.Peek(a)
		return v
	}

	for range count {
		e := decode(address, peek, nil)
		dsm.Entries = append(dsm.Entries, e)
		address += uint16(len(e.Bytes))
	}

	return dsm
}

// FromBytes disassembles the data as though it were loaded at origin. An
// instruction that is truncated by the end of the data is disassembled as data.
func FromBytes(origin uint16, data []uint8) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(data)),
	}

	for i := 0; i < len(data); {
		limit := len(data) - i
		e := decode(origin+uint16(i), func(a uint16) uint8 {
			return data[int(a-origin)]
		}, &limit)
		dsm.Entries = append(dsm.Entries, e)
		i += len(e.Bytes)
	}

	return dsm
}

// decode the entry at address. a non-nil limit is the number of bytes that
// are available.
func decode(address uint16, peek func(uint16) uint8, limit *int) Entry {
	opcode := peek(address)
	e := Entry{
		Address: address,
		Bytes:   []uint8{opcode},
	}

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return e
	}
	if limit != nil && defn.Bytes > *limit {
		return e
	}

	e.Defn = defn

	switch defn.Bytes {
	case 2:
		b := peek(address + 1)
		e.Bytes = append(e.Bytes, b)
		e.Operand = uint16(b)
	case 3:
		lo := peek(address + 1)
		hi := peek(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		e.Operand = uint16(hi)<<8 | uint16(lo)
	}

	// branch target is relative to the address of the next instruction
	if defn.AddressingMode == instructions.Relative {
		e.Operand = address + 2 + uint16(int16(int8(e.Operand)))
	}

	return e
}

// Find returns the index of the entry at the address. Returns false if no
// entry starts at the address.
func (dsm *Disassembly) Find(address uint16) (int, bool) {
	for i, e := range dsm.Entries {
		if e.Address == address {
			return i, true
		}
	}
	return -1, false
}
