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

import (
	"fmt"
	"strings"

	"github.com/vm6502/vm6502/curated"
)

// Kind identifies the type of a built-in device.
type Kind int

// List of device kinds. The CPU kind exists for completeness and cannot be
// mapped into the address space.
const (
	CPU Kind = iota
	PixelScreen
	ASCIIIO
	ROM
	RAM
)

func (k Kind) String() string {
	switch k {
	case CPU:
		return "CPU"
	case PixelScreen:
		return "PixelScreen"
	case ASCIIIO:
		return "ASCIIIO"
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	}
	return "unknown device kind"
}

// ParseKind returns the Kind named by s. As well as the String() value of the
// Kind, the short names "screen" and "ascii" are accepted. The comparison is
// case insensitive.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return CPU, true
	case "pixelscreen", "screen":
		return PixelScreen, true
	case "asciiio", "ascii":
		return ASCIIIO, true
	case "rom":
		return ROM, true
	case "ram":
		return RAM, true
	}
	return CPU, false
}

// FixedSize returns the size of the device kind and true if the size of the
// kind is fixed. Returns false for kinds that are sized by the caller.
func (k Kind) FixedSize() (int, bool) {
	switch k {
	case PixelScreen:
		return ScreenWidth * ScreenHeight, true
	case ASCIIIO:
		return numASCIIRegisters, true
	}
	return 0, false
}

// Device is the contract between the memory manager and a memory mapped
// device.
type Device interface {
	// a short name for the device
	Label() string

	// the number of addresses occupied by the device. does not change after
	// construction
	Size() int

	// advance the device by one clock tick
	Tick()

	// system reset. a device that stores a program should keep it
	ResetSystem()

	// hard reset. returns the device to its power-on state
	ResetHard()

	// read and write the device. offset is guaranteed to be less than Size()
	Read(offset uint16) uint8
	Write(offset uint16, value uint8) error
}

// Peeker is implemented by devices for which Read() has side effects. Peek()
// returns the same value as Read() without the side effect.
type Peeker interface {
	Peek(offset uint16) uint8
}

// Snapshotter is implemented by devices that can export a copy of their
// state as a slice of bytes.
type Snapshotter interface {
	Snapshot() []uint8
}

// Widget is implemented by devices that can describe changes to their
// visible state since the previous call to Widget().
type Widget interface {
	Widget() Update
}

// Update is the type returned by the Widget interface. Use a type switch to
// find the specific update.
type Update interface {
	fmt.Stringer
}

// ReadOnly can be embedded by devices that do not accept writes.
type ReadOnly struct {
	label string
}

// Write implements the Device interface.
func (ro ReadOnly) Write(offset uint16, _ uint8) error {
	return curated.Errorf(UnwritableDevice, ro.label, offset)
}

// NoTick can be embedded by devices that do nothing on a clock tick.
type NoTick struct{}

// Tick implements the Device interface.
func (NoTick) Tick() {}
