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
	"sort"
	"strings"
)

// Area is a named Range. Used to summarise the topology of the address
// space.
type Area struct {
	Range
	Label string
}

// Summary returns a multiline string describing the areas in address order.
// Unoccupied gaps between areas are listed as "unmapped".
func Summary(areas []Area) string {
	s := make([]Area, len(areas))
	copy(s, areas)
	sort.Slice(s, func(i, j int) bool {
		return s[i].Origin < s[j].Origin
	})

	b := strings.Builder{}
	next := 0
	for _, a := range s {
		if int(a.Origin) > next {
			b.WriteString(fmt.Sprintf("%04x-%04x unmapped\n", next, a.Origin-1))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", a.Range, a.Label))
		next = int(a.Memtop) + 1
	}
	if next < AddressSpace {
		b.WriteString(fmt.Sprintf("%04x-%04x unmapped\n", next, Memtop))
	}

	return b.String()
}
