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
	"io"
)

// Write the disassembly to io.Writer, one entry per line. The entry at the
// marker address is prefixed with an arrow.
func (dsm *Disassembly) Write(output io.Writer, marker uint16) error {
	for _, e := range dsm.Entries {
		prefix := "   "
		if e.Address == marker {
			prefix = "-> "
		}
		if _, err := io.WriteString(output, prefix+e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
