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

package memorymap_test

import (
	"testing"

	"github.com/vm6502/vm6502/hardware/memory/memorymap"
	"github.com/vm6502/vm6502/test"
)

func TestRange(t *testing.T) {
	r, ok := memorymap.NewRange(0x1000, 0x1000)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, r.Memtop, uint16(0x1fff))
	test.ExpectEquality(t, r.Size(), 0x1000)
	test.ExpectEquality(t, r.Contains(0x0fff), false)
	test.ExpectEquality(t, r.Contains(0x1000), true)
	test.ExpectEquality(t, r.Contains(0x1fff), true)
	test.ExpectEquality(t, r.Contains(0x2000), false)
	test.ExpectEquality(t, r.Offset(0x1234), uint16(0x0234))
	test.ExpectEquality(t, r.String(), "1000-1fff")

	// top of the address space
	r, ok = memorymap.NewRange(0xff00, 0x100)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, r.Memtop, uint16(0xffff))

	_, ok = memorymap.NewRange(0xff00, 0x101)
	test.ExpectEquality(t, ok, false)
	_, ok = memorymap.NewRange(0x0000, 0)
	test.ExpectEquality(t, ok, false)

	r, ok = memorymap.NewRange(0x0000, 0x10000)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, r.Size(), 0x10000)
}

func TestOverlaps(t *testing.T) {
	a := memorymap.Range{Origin: 0x0000, Memtop: 0x0fff}
	b := memorymap.Range{Origin: 0x1000, Memtop: 0x1fff}
	c := memorymap.Range{Origin: 0x0fff, Memtop: 0x1000}

	test.ExpectEquality(t, a.Overlaps(b), false)
	test.ExpectEquality(t, b.Overlaps(a), false)
	test.ExpectEquality(t, a.Overlaps(c), true)
	test.ExpectEquality(t, c.Overlaps(b), true)
	test.ExpectEquality(t, a.Overlaps(a), true)
}

func TestSummary(t *testing.T) {
	s := memorymap.Summary([]memorymap.Area{
		{Range: memorymap.Range{Origin: 0x1000, Memtop: 0x1fff}, Label: "ROM"},
		{Range: memorymap.Range{Origin: 0x0000, Memtop: 0x0fff}, Label: "RAM"},
	})
	test.ExpectEquality(t, s, "0000-0fff RAM\n1000-1fff ROM\n2000-ffff unmapped\n")

	s = memorymap.Summary(nil)
	test.ExpectEquality(t, s, "0000-ffff unmapped\n")
}
