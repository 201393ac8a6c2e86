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

package setup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/programloader"
	"github.com/vm6502/vm6502/setup"
	"github.com/vm6502/vm6502/test"
)

func TestParseLayout(t *testing.T) {
	entries, err := setup.ParseLayout("ram:0x0000:0x1000;rom:0x1000:0x1000;screen:0x2000;ascii:0x2400")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 4)
	test.ExpectEquality(t, entries[0], setup.Entry{Kind: devices.RAM, Origin: 0x0000, Size: 0x1000, UID: "ram"})
	test.ExpectEquality(t, entries[1], setup.Entry{Kind: devices.ROM, Origin: 0x1000, Size: 0x1000, UID: "rom"})
	test.ExpectEquality(t, entries[2], setup.Entry{Kind: devices.PixelScreen, Origin: 0x2000, UID: "screen"})
	test.ExpectEquality(t, entries[3], setup.Entry{Kind: devices.ASCIIIO, Origin: 0x2400, UID: "ascii"})

	// second device of the same kind and an explicit uid
	entries, err = setup.ParseLayout(" ram:0:256 ; ram:256:256 ; rom:4096:16:prg ")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, entries[1].UID, "ram1")
	test.ExpectEquality(t, entries[1].Origin, uint16(256))
	test.ExpectEquality(t, entries[2].UID, "prg")
	test.ExpectEquality(t, entries[2].String(), "ROM at 1000 size 0x10 (prg)")
}

func TestParseLayoutErrors(t *testing.T) {
	for _, l := range []string{
		"",
		";",
		"ram",
		"disk:0x0000:0x10",
		"cpu:0x0000",
		"ram:0x10000:0x10",
		"ram:0x0000:big",
		"ram:0:1:a:b",
		"ram:0:16:x;rom:16:16:x",
	} {
		_, err := setup.ParseLayout(l)
		test.ExpectEquality(t, curated.Is(err, setup.LayoutError), true, l)
	}
}

func TestApply(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)

	entries, err := setup.ParseLayout(setup.DefaultLayout + ";screen:0x2000;ascii:0x2400")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, setup.Apply(sys, entries))
	test.ExpectEquality(t, len(sys.Devices()), 4)

	// overlapping layouts are found when applied
	sys, err = hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	entries, err = setup.ParseLayout("ram:0:0x100;rom:0x80:0x100")
	test.DemandSuccess(t, err)
	err = setup.Apply(sys, entries)
	test.ExpectEquality(t, curated.Is(err, setup.LayoutError), true)
	test.ExpectEquality(t, curated.Has(err, devices.ConfigurationError), true)
}

func TestAttachProgram(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hello.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x05}, 0o600))

	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	entries, err := setup.ParseLayout(setup.DefaultLayout)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, setup.Apply(sys, entries))

	ld := programloader.NewLoader(fn)
	test.ExpectSuccess(t, setup.AttachProgram(sys, &ld, setup.DefaultProgramUID))
	snap, ok := sys.Snapshot(1)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, snap[0], uint8(0xa9))
	test.ExpectEquality(t, snap[1], uint8(0x05))

	// the program has no target
	test.ExpectFailure(t, setup.AttachProgram(sys, &ld, "missing"))

	// the program does not exist
	ld = programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, setup.AttachProgram(sys, &ld, setup.DefaultProgramUID))
}
