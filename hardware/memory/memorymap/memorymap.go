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

package memorymap

import (
	"fmt"
)

// Memtop is the highest address of the address space.
const Memtop = uint16(0xffff)

// AddressSpace is the number of addresses in the address space.
const AddressSpace = int(Memtop) + 1

// Range is an area of the address space.
type Range struct {
	Origin uint16
	Memtop uint16
}

// NewRange creates a range of size addresses starting at origin. Returns
// false if size is zero or if the range would extend beyond the top of the
// address space.
func NewRange(origin uint16, size int) (Range, bool) {
	if size <= 0 || int(origin)+size > AddressSpace {
		return Range{}, false
	}
	return Range{Origin: origin, Memtop: uint16(int(origin) + size - 1)}, true
}

func (r Range) String() string {
	return fmt.Sprintf("%04x-%04x", r.Origin, r.Memtop)
}

// Size returns the number of addresses in the range.
func (r Range) Size() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

// Valid returns false if the memtop is below the origin.
func (r Range) Valid() bool {
	return r.Memtop >= r.Origin
}

// Contains returns true if the address is in the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// Overlaps returns true if any address is in both ranges.
func (r Range) Overlaps(o Range) bool {
	return r.Origin <= o.Memtop && o.Origin <= r.Memtop
}

// Offset returns the address relative to the origin of the range.
func (r Range) Offset(address uint16) uint16 {
	return address - r.Origin
}
