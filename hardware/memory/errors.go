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

package memory

// Sentinel error patterns.
const (
	// a device has been asked for an offset beyond its size. this can only
	// happen if a device reports a size different to the one it was
	// registered with
	OffsetOutOfRange = "memory: offset out of range: %s (offset %04x, size %04x)"
)

// UnmappedValue is placed on the bus by a read from an address that is not
// owned by any device.
const UnmappedValue = uint8(0x00)
