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

// RAMDevice is a caller sized block of read/write memory.
type RAMDevice struct {
	NoTick
	storage []uint8
}

// NewRAMDevice is the preferred method of initialisation for RAMDevice.
func NewRAMDevice(size int) *RAMDevice {
	return &RAMDevice{
		storage: make([]uint8, size),
	}
}

// Label implements the Device interface.
func (ram *RAMDevice) Label() string {
	return RAM.String()
}

// Size implements the Device interface.
func (ram *RAMDevice) Size() int {
	return len(ram.storage)
}

// ResetSystem implements the Device interface. Clears the memory.
func (ram *RAMDevice) ResetSystem() {
	clear(ram.storage)
}

// ResetHard implements the Device interface. Clears the memory.
func (ram *RAMDevice) ResetHard() {
	clear(ram.storage)
}

// Read implements the Device interface.
func (ram *RAMDevice) Read(offset uint16) uint8 {
	return ram.storage[offset]
}

// Write implements the Device interface.
func (ram *RAMDevice) Write(offset uint16, value uint8) error {
	ram.storage[offset] = value
	return nil
}

// Snapshot implements the Snapshotter interface.
func (ram *RAMDevice) Snapshot() []uint8 {
	c := make([]uint8, len(ram.storage))
	copy(c, ram.storage)
	return c
}
