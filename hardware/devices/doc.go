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

// Package devices defines the Device interface, the contract between the
// memory manager and anything that can be mapped into the address space, and
// the built-in device implementations.
//
// Built-in devices are created with NewDevice(). Any other type that
// satisfies the Device interface can be passed to the memory manager
// directly.
//
// Offsets passed to Read() and Write() are relative to the origin of the
// device and have already been checked against Size() by the memory manager.
// Implementations need not check them again.
package devices
