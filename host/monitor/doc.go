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

// Package monitor is a full screen terminal interface for a running
// hardware.System. It shows the CPU registers, a disassembly of the next
// instructions, the device map, the output of the ASCIIIO device and the
// tail of the log.
//
// The system can be single stepped, run, stopped and reset from the
// keyboard:
//
//	F5      run/stop
//	F6      step one instruction
//	F8      system reset
//	F9      hard reset
//	Ctrl-C  quit
//
// Any other key is fed to the ASCIIIO device.
package monitor
