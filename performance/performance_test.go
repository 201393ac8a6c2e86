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

package performance_test

import (
	"strings"
	"testing"

	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/performance"
	"github.com/vm6502/vm6502/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	test.ExpectEquality(t, performance.CalcRate(1000, 2.0), 500.0)
	test.ExpectEquality(t, performance.CalcRate(1000, 0), 0.0)
}

func TestCheck(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.AddDevice(devices.RAM, 0x0000, 0x1000, ""))

	// INX; $02 is not an opcode
	test.DemandSuccess(t, sys.AddDevice(devices.ROM, 0x1000, 0x1000, "rom"))
	test.DemandSuccess(t, sys.LoadProgram("rom", []uint8{0xe8, 0x02}))

	w := &test.Writer{}
	test.DemandSuccess(t, performance.Check(w, performance.ProfileNone, sys, "50ms"))
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "in 0.05 seconds)\n"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "MHz"), true)

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, sys, "sometime"))
}
