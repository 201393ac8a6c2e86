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

// Package hardware is the base package for the virtual machine. The System
// type ties together the CPU and the memory manager, and provides the
// control surface used by the host.
//
// The contents of the address space are decided by the host. A typical
// machine has RAM at the bottom of memory and the program in a ROM:
//
//	sys := hardware.NewSystem(prefs, nil)
//	err := sys.AddDevice(devices.RAM, 0x0000, 0x1000, "ram")
//	err = sys.AddDevice(devices.ROM, 0x1000, 0x1000, "rom")
//	err = sys.LoadProgram("rom", data)
//
// Devices can only be added and removed between instructions.
package hardware
