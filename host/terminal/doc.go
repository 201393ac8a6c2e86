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

// Package terminal connects the ASCIIIO device to the terminal the program is
// running in. Keyboard input is fed to the device and output from the device
// is written to the terminal.
//
// When the input is an interactive terminal it is put into cbreak mode for
// the duration of Run() so that characters are delivered without waiting for
// the return key. The terminal is a wrapper for "github.com/pkg/term/termios".
package terminal
