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

package instructions

// EffectCategory categorises an instruction by the effect it has on memory
// and on the flow of the program.
type EffectCategory int

// List of effect categories.
const (
	// register only instructions
	None EffectCategory = iota

	// memory modes read the effective address before the operation
	Read

	// memory modes write to the effective address after the operation
	Write

	// read, operate and write back
	RMW

	// branches and JMP
	Flow

	// JSR and RTS
	Subroutine

	// BRK and RTI
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case None:
		return "None"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
