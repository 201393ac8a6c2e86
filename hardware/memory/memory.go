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

import (
	"fmt"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/hardware/memory/bus"
	"github.com/vm6502/vm6502/hardware/memory/memorymap"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/notifications"
)

type mapping struct {
	memorymap.Range
	uid string
	dev devices.Device
}

// the checked accessors. the offset is guaranteed to be in range of the
// mapping so a failure here means that the device has changed its size
func (m *mapping) offset(address uint16) uint16 {
	off := m.Offset(address)
	if int(off) >= m.dev.Size() {
		panic(curated.Errorf(OffsetOutOfRange, m.dev.Label(), off, m.dev.Size()))
	}
	return off
}

func (m *mapping) read(address uint16) uint8 {
	return m.dev.Read(m.offset(address))
}

func (m *mapping) peek(address uint16) uint8 {
	off := m.offset(address)
	if p, ok := m.dev.(devices.Peeker); ok {
		return p.Peek(off)
	}
	return m.dev.Read(off)
}

func (m *mapping) write(address uint16, value uint8) error {
	return m.dev.Write(m.offset(address), value)
}

// Summary describes a single registered device.
type Summary struct {
	Index int
	UID   string
	Label string
	memorymap.Range
}

func (s Summary) String() string {
	return fmt.Sprintf("%d: %s %s (%s)", s.Index, s.Range, s.Label, s.UID)
}

// MemManager is the memory manager. It owns the bus and the mapped devices.
type MemManager struct {
	bus      *bus.Bus
	mappings []*mapping
	notify   notifications.Notify
}

// NewMemManager is the preferred method of initialisation for the MemManager
// type. The notify argument can be nil, in which case notifications are
// logged.
func NewMemManager(notify notifications.Notify) *MemManager {
	return &MemManager{
		bus:      bus.NewBus(),
		mappings: make([]*mapping, 0),
		notify:   notify,
	}
}

func (mem *MemManager) String() string {
	return memorymap.Summary(mem.areas())
}

func (mem *MemManager) areas() []memorymap.Area {
	a := make([]memorymap.Area, 0, len(mem.mappings))
	for _, m := range mem.mappings {
		a = append(a, memorymap.Area{Range: m.Range, Label: m.dev.Label()})
	}
	return a
}

// Bus returns the bus owned by the memory manager.
func (mem *MemManager) Bus() *bus.Bus {
	return mem.bus
}

// AddDevice maps a device into the address space. The range origin to memtop
// is inclusive and must be the same size as the device. The range must not
// overlap an existing mapping. A non-empty uid must be unique.
//
// Nothing is registered if an error is returned.
func (mem *MemManager) AddDevice(dev devices.Device, origin uint16, memtop uint16, uid string) error {
	if dev == nil {
		return curated.Errorf(devices.ConfigurationError, "nil device")
	}

	r := memorymap.Range{Origin: origin, Memtop: memtop}
	if !r.Valid() {
		return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("memtop (%04x) is below origin (%04x)", memtop, origin))
	}

	if r.Size() != dev.Size() {
		return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("%s of size %04x does not fit range %s", dev.Label(), dev.Size(), r))
	}

	for _, m := range mem.mappings {
		if m.Overlaps(r) {
			return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("%s at %s overlaps %s at %s", dev.Label(), r, m.dev.Label(), m.Range))
		}
		if uid != "" && m.uid == uid {
			return curated.Errorf(devices.ConfigurationError, fmt.Sprintf("duplicate uid (%s)", uid))
		}
	}

	mem.mappings = append(mem.mappings, &mapping{Range: r, uid: uid, dev: dev})
	logger.Logf(logger.Allow, "memory", "added %s at %s", dev.Label(), r)

	return nil
}

// RemoveDevice removes the device at index, as listed by Devices(). Returns
// false if the index is invalid.
func (mem *MemManager) RemoveDevice(index int) bool {
	if index < 0 || index >= len(mem.mappings) {
		return false
	}
	m := mem.mappings[index]
	mem.mappings = append(mem.mappings[:index], mem.mappings[index+1:]...)
	logger.Logf(logger.Allow, "memory", "removed %s at %s", m.dev.Label(), m.Range)
	return true
}

func (mem *MemManager) find(address uint16) *mapping {
	for _, m := range mem.mappings {
		if m.Contains(address) {
			return m
		}
	}
	return nil
}

// DispatchRead reads the device at the address on the bus and places the
// result on the bus.
func (mem *MemManager) DispatchRead() {
	mem.bus.SetRW(true)

	m := mem.find(mem.bus.Addr())
	if m == nil {
		mem.bus.SetData(UnmappedValue)
		return
	}

	mem.bus.SetData(m.read(mem.bus.Addr()))
}

// DispatchWrite writes the data on the bus to the device at the address on
// the bus. A write refused by the device raises a notification.
func (mem *MemManager) DispatchWrite() {
	mem.bus.SetRW(false)

	m := mem.find(mem.bus.Addr())
	if m == nil {
		return
	}

	if err := m.write(mem.bus.Addr(), mem.bus.Data()); err != nil {
		mem.raise(notifications.NotifyUnwritable, err.Error())
	}
}

func (mem *MemManager) raise(notice notifications.Notice, detail string) {
	if mem.notify == nil {
		logger.Logf(logger.Allow, "memory", "%s: %s", notice, detail)
		return
	}
	if err := mem.notify.Notify(notice, detail); err != nil {
		logger.Log(logger.Allow, "memory", err)
	}
}

// Peek returns the value at the address without side effects. Returns false
// if the address is unmapped.
func (mem *MemManager) Peek(address uint16) (uint8, bool) {
	m := mem.find(address)
	if m == nil {
		return UnmappedValue, false
	}
	return m.peek(address), true
}

// Tick the bus and then every device, in registration order.
func (mem *MemManager) Tick() {
	for _, m := range mem.mappings {
		m.dev.Tick()
	}
}

// ResetBus resets the state of the bus.
func (mem *MemManager) ResetBus() {
	mem.bus.Reset()
}

// ResetDevices performs a system reset of every device.
func (mem *MemManager) ResetDevices() {
	for _, m := range mem.mappings {
		m.dev.ResetSystem()
	}
}

// ResetDevicesHard performs a hard reset of every device.
func (mem *MemManager) ResetDevicesHard() {
	for _, m := range mem.mappings {
		m.dev.ResetHard()
	}
}

// Devices returns a summary of every registered device, in registration
// order.
func (mem *MemManager) Devices() []Summary {
	s := make([]Summary, 0, len(mem.mappings))
	for i, m := range mem.mappings {
		s = append(s, Summary{
			Index: i,
			UID:   m.uid,
			Label: m.dev.Label(),
			Range: m.Range,
		})
	}
	return s
}

// Device returns the device at index.
func (mem *MemManager) Device(index int) (devices.Device, bool) {
	if index < 0 || index >= len(mem.mappings) {
		return nil, false
	}
	return mem.mappings[index].dev, true
}

// DeviceByUID returns the device registered with the uid and its index.
func (mem *MemManager) DeviceByUID(uid string) (devices.Device, int, bool) {
	for i, m := range mem.mappings {
		if m.uid == uid {
			return m.dev, i, true
		}
	}
	return nil, -1, false
}

// Snapshot returns a copy of the state of the device at index. Returns false
// if the index is invalid or if the device does not support snapshots.
func (mem *MemManager) Snapshot(index int) ([]uint8, bool) {
	dev, ok := mem.Device(index)
	if !ok {
		return nil, false
	}
	if s, ok := dev.(devices.Snapshotter); ok {
		return s.Snapshot(), true
	}
	return nil, false
}

// Widget returns the changes to the device at index since the previous call.
// Returns false if the index is invalid or if the device does not support
// widget updates.
func (mem *MemManager) Widget(index int) (devices.Update, bool) {
	dev, ok := mem.Device(index)
	if !ok {
		return nil, false
	}
	if w, ok := dev.(devices.Widget); ok {
		return w.Widget(), true
	}
	return nil, false
}
