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

package report_test

import (
	"strings"
	"testing"

	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/host/report"
	"github.com/vm6502/vm6502/test"
)

func newSystem(t *testing.T) *hardware.System {
	t.Helper()

	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Origin.Set(0x1000))

	sys, err := hardware.NewSystem(prefs, nil)
	test.DemandSuccess(t, err)
	return sys
}

func TestRegisters(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.AddDevice(devices.ROM, 0x1000, 0x10, "rom"))
	test.DemandSuccess(t, sys.LoadProgram("rom", []uint8{0xa9, 0x05}))

	test.ExpectEquality(t, report.Registers(sys), "PC=1000 A=00 X=00 Y=00 SP=00 SR=sv-bdizc\nno instruction")

	test.DemandSuccess(t, sys.Tick())
	test.ExpectEquality(t, strings.Split(report.Registers(sys), "\n")[1], "1000 LDA Immediate (1/2) *")

	test.DemandSuccess(t, sys.Tick())
	test.ExpectEquality(t, report.Registers(sys), "PC=1002 A=05 X=00 Y=00 SP=00 SR=sv-bdizc\n1000 LDA Immediate (2/2)")
}

func TestDevices(t *testing.T) {
	sys := newSystem(t)
	test.ExpectEquality(t, report.Devices(sys), "no devices")

	test.DemandSuccess(t, sys.AddDevice(devices.RAM, 0x0000, 0x1000, "ram"))
	test.DemandSuccess(t, sys.AddDevice(devices.ROM, 0x1000, 0x1000, "rom"))
	test.ExpectEquality(t, report.Devices(sys), "0: 0000-0fff RAM (ram)\n1: 1000-1fff ROM (rom)")
}

func TestDisassembly(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.AddDevice(devices.ROM, 0x1000, 0x10, "rom"))

	// LDA #$05; STA $0010; NOP
	test.DemandSuccess(t, sys.LoadProgram("rom", []uint8{0xa9, 0x05, 0x8d, 0x10, 0x00, 0xea}))

	lines := strings.Split(report.Disassembly(sys, 3), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "-> 1000  a9 05     LDA #$05")
	test.ExpectEquality(t, lines[1], "   1002  8d 10 00  STA $0010")
	test.ExpectEquality(t, lines[2], "   1005  ea        NOP")

	// the instruction in flight stays marked
	test.DemandSuccess(t, sys.Tick())
	test.ExpectEquality(t, strings.HasPrefix(report.Disassembly(sys, 1), "-> 1000"), true)

	test.DemandSuccess(t, sys.Tick())
	test.ExpectEquality(t, strings.HasPrefix(report.Disassembly(sys, 1), "-> 1002"), true)
}
