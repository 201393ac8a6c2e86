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

// ROMDevice is a caller sized block of read only memory. The program image is
// placed in the ROM with Contents() before emulation begins.
type ROMDevice struct {
	NoTick
	ReadOnly
	storage []uint8
}

// NewROMDevice is the preferred method of initialisation for ROMDevice.
func NewROMDevice(size int) *ROMDevice {
	return &ROMDevice{
		ReadOnly: ReadOnly{label: ROM.String()},
		storage:  make([]uint8, size),
	}
}

// Label implements the Device interface.
func (rom *ROMDevice) Label() string {
	return ROM.String()
}

// Size implements the Device interface.
func (rom *ROMDevice) Size() int {
	return len(rom.storage)
}

// ResetSystem implements the Device interface. The contents of the ROM are
// kept.
func (rom *ROMDevice) ResetSystem() {
}

// ResetHard implements the Device interface. The contents of the ROM are
// cleared.
func (rom *ROMDevice) ResetHard() {
	clear(rom.storage)
}

// Read implements the Device interface.
func (rom *ROMDevice) Read(offset uint16) uint8 {
	return rom.storage[offset]
}

// Contents returns the storage of the ROM. Changes to the returned slice
// change the ROM.
func (rom *ROMDevice) Contents() []uint8 {
	return rom.storage
}

// Snapshot implements the Snapshotter interface.
func (rom *ROMDevice) Snapshot() []uint8 {
	c := make([]uint8, len(rom.storage))
	copy(c, rom.storage)
	return c
}
