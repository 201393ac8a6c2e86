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
)

// Result records the progress of the most recent instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// definition of the instruction. nil if the opcode could not be decoded
	Defn *instructions.Definition

	// number of ticks used by the instruction so far, including the fetch
	Cycles int

	// the instruction has completed
	Final bool
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}
	s := fmt.Sprintf("%04x %s %s (%d/%d)", r.Address, r.Defn.Operator, r.Defn.AddressingMode, r.Cycles, r.Defn.Cycles)
	if !r.Final {
		s = fmt.Sprintf("%s *", s)
	}
	return s
}
