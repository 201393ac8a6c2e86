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

package hardware

import (
	"fmt"
	"strings"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware/cpu"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/hardware/memory"
	"github.com/vm6502/vm6502/hardware/memory/memorymap"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/notifications"
)

// System is the virtual machine. It owns the CPU and the memory manager.
type System struct {
	Prefs *preferences.Preferences

	cpu    *cpu.CPU
	mem    *memory.MemManager
	notify notifications.Notify
}

// NewSystem is the preferred method of initialisation for the System type.
// If prefs is nil the default preferences are used. If notify is nil then
// notifications are logged.
func NewSystem(prefs *preferences.Preferences, notify notifications.Notify) (*System, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, curated.Errorf("system: %v", err)
		}
	}

	if notify == nil {
		notify = logNotify{}
	}

	sys := &System{
		Prefs:  prefs,
		notify: notify,
	}
	sys.mem = memory.NewMemManager(notify)
	sys.cpu = cpu.NewCPU(prefs, notify)

	return sys, nil
}

func (sys *System) String() string {
	s := strings.Builder{}
	s.WriteString(sys.cpu.String())
	s.WriteString("\n")
	s.WriteString(sys.mem.String())
	return s.String()
}

// CPU returns the CPU of the system. The CPU should not be altered while an
// instruction is in flight.
func (sys *System) CPU() *cpu.CPU {
	return sys.cpu
}

// Memory returns the memory manager of the system.
func (sys *System) Memory() *memory.MemManager {
	return sys.mem
}

// Tick the memory, bus and devices, and then the CPU.
func (sys *System) Tick() error {
	sys.mem.Tick()
	return sys.cpu.Tick(sys.mem)
}

// TickX calls Tick() n times. Execution continues after an error and the
// first error is returned. Values of n less than one do nothing.
func (sys *System) TickX(n int) error {
	var first error
	for range n {
		if err := sys.Tick(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Step ticks the system until the instruction in flight completes. If there
// is no instruction in flight then the next instruction is executed in full.
func (sys *System) Step() error {
	for {
		if err := sys.Tick(); err != nil {
			return err
		}
		if !sys.cpu.InFlight() {
			return nil
		}
	}
}

// Run executes instructions until the continueCheck function returns false.
// The function is called at the end of every instruction. A nil function
// runs until an error occurs.
func (sys *System) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := sys.Step(); err != nil {
			return err
		}
		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// ResetSystem resets the CPU, the bus and every device. Devices keep their
// contents if their system reset allows it. The ROM device for example.
func (sys *System) ResetSystem() {
	sys.cpu.Reset()
	sys.mem.ResetBus()
	sys.mem.ResetDevices()
	logger.Log(logger.Allow, "system", "system reset")
}

// ResetHard resets the CPU, the bus and performs a hard reset of every
// device.
func (sys *System) ResetHard() {
	sys.cpu.Reset()
	sys.mem.ResetBus()
	sys.mem.ResetDevicesHard()
	logger.Log(logger.Allow, "system", "hard reset")
}

// AddDevice creates a device of the specified kind and maps it into the
// address space at origin. The size argument must be zero for kinds with a
// fixed size.
func (sys *System) AddDevice(kind devices.Kind, origin uint16, size int, uid string) error {
	dev, err := devices.NewDevice(kind, size)
	if err != nil {
		return err
	}
	return sys.AttachDevice(dev, origin, uid)
}

// AttachDevice maps a device created by the host into the address space at
// origin.
func (sys *System) AttachDevice(dev devices.Device, origin uint16, uid string) error {
	if sys.cpu.InFlight() {
		return curated.Errorf(devices.ConfigurationError, "cannot add a device while an instruction is in flight")
	}

	if dev == nil {
		return curated.Errorf(devices.ConfigurationError, "nil device")
	}

	r, ok := memorymap.NewRange(origin, dev.Size())
	if !ok {
		return curated.Errorf(devices.ConfigurationError,
			fmt.Sprintf("%s of size %#x does not fit at origin %04x", dev.Label(), dev.Size(), origin))
	}

	return sys.mem.AddDevice(dev, r.Origin, r.Memtop, uid)
}

// RemoveDevice removes the device at the index in the list returned by
// Devices(). Returns false if the index is invalid or if an instruction is in
// flight.
func (sys *System) RemoveDevice(index int) bool {
	if sys.cpu.InFlight() {
		logger.Log(logger.Allow, "system", curated.Errorf(devices.ConfigurationError, "cannot remove a device while an instruction is in flight"))
		return false
	}
	return sys.mem.RemoveDevice(index)
}

// Devices returns a summary of every mapped device in registration order.
func (sys *System) Devices() []memory.Summary {
	return sys.mem.Devices()
}

// Snapshot returns a copy of the storage of the device at index.
func (sys *System) Snapshot(index int) ([]uint8, bool) {
	return sys.mem.Snapshot(index)
}

// WidgetUpdate returns the changes to the device at index since the previous
// call. Returns false if the device does not produce updates.
func (sys *System) WidgetUpdate(index int) (devices.Update, bool) {
	return sys.mem.Widget(index)
}

// loadable devices expose their storage for the program image.
type loadable interface {
	Contents() []uint8
}

// LoadProgram copies the data into the device with the uid. The device must
// be a ROM and must be at least as large as the data.
func (sys *System) LoadProgram(uid string, data []uint8) error {
	dev, _, ok := sys.mem.DeviceByUID(uid)
	if !ok {
		return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("no device with uid %q", uid))
	}

	ld, ok := dev.(loadable)
	if !ok {
		return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("%s cannot be loaded with a program", dev.Label()))
	}

	c := ld.Contents()
	if len(data) > len(c) {
		return curated.Errorf(devices.ConfigurationError,
			fmt.Sprintf("program (%d bytes) is larger than %s (%d bytes)", len(data), uid, len(c)))
	}

	copy(c, data)
	logger.Logf(logger.Allow, "system", "loaded %d bytes into %s", len(data), uid)

	return nil
}
