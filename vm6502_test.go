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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/modalflag"
	"github.com/vm6502/vm6502/setup"
	"github.com/vm6502/vm6502/test"
)

// writeProgram creates a program file in a temporary working directory and
// returns the filename.
func writeProgram(t *testing.T, data ...uint8) string {
	t.Helper()
	t.Chdir(t.TempDir())

	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func parseSystemFlags(t *testing.T, args ...string) (*modalflag.Modes, *systemFlags) {
	t.Helper()

	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs(args)
	md.NewMode()
	sf := addSystemFlags(md)

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	return md, sf
}

func TestCreate(t *testing.T) {
	// LDA #$05
	fn := writeProgram(t, 0xa9, 0x05)

	md, sf := parseSystemFlags(t, "-prefs", "", fn)
	sys, ld, err := sf.create(md)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.ShortName(), "prog")

	// execution starts at the beginning of the program device
	test.ExpectEquality(t, sys.CPU().PC.Address(), uint16(0x1000))
	test.ExpectEquality(t, sys.Prefs.IsExperimental(), false)

	test.DemandSuccess(t, sys.Step())
	test.ExpectEquality(t, sys.CPU().A.Value(), uint8(0x05))

}

func TestCreateWithFlags(t *testing.T) {
	fn := writeProgram(t, 0xea, 0xea, 0xea, 0xea)

	md, sf := parseSystemFlags(t, "-prefs", "", "-origin", "0x0802", "-experimental",
		"-layout", "ram:0x0000:0x800;rom:0x0800:0x100:prg;ascii:0x2400", "-program", "prg", fn)
	sys, _, err := sf.create(md)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, sys.CPU().PC.Address(), uint16(0x0802))
	test.ExpectEquality(t, sys.Prefs.IsExperimental(), true)
	test.ExpectEquality(t, len(sys.Devices()), 3)

	_, ok := setup.FindDevice[*devices.ASCII](sys)
	test.ExpectEquality(t, ok, true)
}

func TestCreateErrors(t *testing.T) {
	fn := writeProgram(t, 0xea)

	// no program
	md, sf := parseSystemFlags(t, "-prefs", "")
	_, _, err := sf.create(md)
	test.ExpectFailure(t, err)

	// too many arguments
	md, sf = parseSystemFlags(t, "-prefs", "", fn, fn)
	_, _, err = sf.create(md)
	test.ExpectFailure(t, err)

	// no device for the program
	md, sf = parseSystemFlags(t, "-prefs", "", "-layout", "ram:0x0000:0x100", fn)
	_, _, err = sf.create(md)
	test.ExpectFailure(t, err)

	// bad layout
	md, sf = parseSystemFlags(t, "-prefs", "", "-layout", "disk:0x0000", fn)
	_, _, err = sf.create(md)
	test.ExpectFailure(t, err)

	// missing program file
	md, sf = parseSystemFlags(t, "-prefs", "", filepath.Join(t.TempDir(), "missing.bin"))
	_, _, err = sf.create(md)
	test.ExpectFailure(t, err)
}

func TestSavePrefs(t *testing.T) {
	fn := writeProgram(t, 0xea)
	prefsFile := filepath.Join(t.TempDir(), "preferences")

	md, sf := parseSystemFlags(t, "-prefs", prefsFile, "-saveprefs", "-origin", "0x1001", fn)
	_, _, err := sf.create(md)
	test.DemandSuccess(t, err)

	_, err = os.Stat(prefsFile)
	test.ExpectSuccess(t, err)

	// the saved origin is used when there is no origin flag
	md, sf = parseSystemFlags(t, "-prefs", prefsFile, fn)
	sys, _, err := sf.create(md)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sys.CPU().PC.Address(), uint16(0x1001))
}

func TestDisasm(t *testing.T) {
	fn := writeProgram(t, 0xa9, 0x05, 0xea)

	w := &test.Writer{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs([]string{"-prefs", "", fn})
	test.DemandSuccess(t, disasm(md))
	test.ExpectEquality(t, w.String(), "-> 1000  a9 05     LDA #$05\n   1002  ea        NOP\n")
}

func TestRegress(t *testing.T) {
	fn := writeProgram(t, 0xa9, 0x05, 0xea, 0xea)
	db := filepath.Join(t.TempDir(), "regressionDB")

	modes := func(args ...string) (*modalflag.Modes, *test.Writer) {
		w := &test.Writer{}
		md := &modalflag.Modes{Output: w}
		md.NewArgs(args)
		return md, w
	}

	md, _ := modes("ADD", "-db", db, "-ticks", "6", fn)
	test.DemandSuccess(t, regress(md))

	md, w := modes("LIST", "-db", db)
	test.DemandSuccess(t, regress(md))
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "000 [program] prog.bin ticks=6"), true)

	md, w = modes("RUN", "-db", db)
	test.DemandSuccess(t, regress(md))
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "regression tests: 1 succeed, 0 fail, 0 skipped\n"), true)

	md, _ = modes("DELETE", "-db", db)
	test.ExpectFailure(t, regress(md))

	md, w = modes("DELETE", "-db", db, "-yes", "0")
	test.DemandSuccess(t, regress(md))
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "deleted test #000 from regression database\n"), true)
}
