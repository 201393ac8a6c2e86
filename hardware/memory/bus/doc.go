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

// Package bus defines the state of the data and address lines that connect
// the CPU to the memory manager.
//
// The CPU latches an address (and for a write the data) onto the bus and asks
// the memory manager to dispatch the access. The memory manager finds the
// device that owns the address and, for a read, places the device's answer on
// the data lines.
package bus
