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

package report

import (
	"strings"

	"github.com/vm6502/vm6502/disassembly"
	"github.com/vm6502/vm6502/hardware"
)

// Registers returns the CPU registers on the first line and the most recent
// instruction on the second.
func Registers(sys *hardware.System) string {
	mc := sys.CPU()

	s := strings.Builder{}
	s.WriteString(mc.String())
	s.WriteString("\n")
	if mc.LastResult.Cycles == 0 {
		s.WriteString("no instruction")
	} else {
		s.WriteString(mc.LastResult.String())
	}
	return s.String()
}

// Devices lists the mapped devices, one per line, in registration order.
func Devices(sys *hardware.System) string {
	d := sys.Devices()
	if len(d) == 0 {
		return "no devices"
	}

	s := strings.Builder{}
	for i, m := range d {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(m.String())
	}
	return s.String()
}

// Disassembly returns count entries starting at the next instruction. If an
// instruction is in flight then the disassembly starts with that instruction.
// The instruction is marked with an arrow.
func Disassembly(sys *hardware.System, count int) string {
	mc := sys.CPU()

	address := mc.PC.Address()
	if mc.InFlight() {
		address = mc.LastResult.Address
	}

	s := strings.Builder{}
	dsm := disassembly.FromMemory(sys.Memory(), address, count)
	_ = dsm.Write(&s, address)
	return strings.TrimSuffix(s.String(), "\n")
}
