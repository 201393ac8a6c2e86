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

package cpu_test

import (
	"testing"

	"github.com/vm6502/vm6502/hardware/cpu"
	"github.com/vm6502/vm6502/hardware/memory/bus"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/notifications"
	"github.com/vm6502/vm6502/test"
)

// mockMem is a flat 64k address space with no devices.
type mockMem struct {
	bus  *bus.Bus
	data [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{bus: bus.NewBus()}
}

func (mem *mockMem) Bus() *bus.Bus {
	return mem.bus
}

func (mem *mockMem) DispatchRead() {
	mem.bus.SetRW(true)
	mem.bus.SetData(mem.data[mem.bus.Addr()])
}

func (mem *mockMem) DispatchWrite() {
	mem.bus.SetRW(false)
	mem.data[mem.bus.Addr()] = mem.bus.Data()
}

// putInstructions copies the bytes into memory at origin. returns the address
// after the last byte.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

type notices struct {
	received []notifications.Notice
	details  []string
}

func (n *notices) Notify(notice notifications.Notice, detail string) error {
	n.received = append(n.received, notice)
	n.details = append(n.details, detail)
	return nil
}

func newPrefs(t *testing.T, origin int, experimental bool) *preferences.Preferences {
	t.Helper()
	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Origin.Set(origin))
	test.DemandSuccess(t, prefs.Experimental.Set(experimental))
	return prefs
}

// step ticks the CPU until the instruction completes. returns the number of
// ticks used.
func step(t *testing.T, mc *cpu.CPU, mem *mockMem) int {
	t.Helper()
	n := 0
	for {
		err := mc.Tick(mem)
		test.DemandSuccess(t, err)
		n++
		if !mc.InFlight() {
			return n
		}
		if n > 10 {
			t.Fatalf("instruction did not complete: %s", mc.LastResult)
		}
	}
}

// run completes the number of instructions.
func run(t *testing.T, mc *cpu.CPU, mem *mockMem, n int) {
	t.Helper()
	for range n {
		step(t, mc, mem)
	}
}
