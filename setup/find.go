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

package setup

import (
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
)

// FindDevice returns the first mapped device of type T, in registration
// order. Used by hosts to find the devices they draw or feed with input.
func FindDevice[T devices.Device](sys *hardware.System) (T, bool) {
	for _, s := range sys.Devices() {
		dev, ok := sys.Memory().Device(s.Index)
		if !ok {
			continue
		}
		if d, ok := dev.(T); ok {
			return d, true
		}
	}

	var zero T
	return zero, false
}
