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

// Package display runs a hardware.System in a window. The first PixelScreen
// device is drawn at the top of the window and the most recent output of the
// first ASCIIIO device is drawn below it. Keyboard input is fed to the
// ASCIIIO device.
//
// F12 saves a screenshot of the PixelScreen as a PNG file.
//
// The Run() function must be called from the main thread.
package display
