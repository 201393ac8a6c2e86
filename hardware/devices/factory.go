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

package devices

import (
	"fmt"

	"github.com/vm6502/vm6502/curated"
)

// NewDevice creates a built-in device of the specified kind. Fixed sized
// kinds must be given a size of zero and caller sized kinds a size larger
// than zero.
func NewDevice(kind Kind, size int) (Device, error) {
	if kind == CPU {
		return nil, curated.Errorf(ConfigurationError, "the CPU cannot be created as a device")
	}

	if _, ok := kind.FixedSize(); ok {
		if size != 0 {
			return nil, curated.Errorf(ConfigurationError, fmt.Sprintf("%s has a fixed size (requested %d)", kind, size))
		}
	} else if size <= 0 {
		return nil, curated.Errorf(ConfigurationError, fmt.Sprintf("%s requires a size", kind))
	}

	switch kind {
	case PixelScreen:
		return NewScreen(), nil
	case ASCIIIO:
		return NewASCII(), nil
	case ROM:
		return NewROMDevice(size), nil
	case RAM:
		return NewRAMDevice(size), nil
	}

	return nil, curated.Errorf(ConfigurationError, fmt.Sprintf("unknown device kind (%d)", kind))
}
