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

// Package memory implements the memory manager. The memory manager owns the
// bus and every device mapped into the 16 bit address space. The CPU places
// an address on the bus and calls DispatchRead() or DispatchWrite(). The
// memory manager finds the device that owns the address and performs the
// access with the address translated to an offset from the device's origin.
//
// Devices are registered with AddDevice(). Ranges are inclusive and must not
// overlap:
//
//	ram, _ := devices.NewDevice(devices.RAM, 0x1000)
//	err := mem.AddDevice(ram, 0x0000, 0x0fff, "ram")
//
// Reads from an address that no device owns place UnmappedValue on the bus.
// Writes to such an address are dropped.
//
// Devices are ticked, and reported by Devices(), in registration order.
package memory
