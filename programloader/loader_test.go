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

package programloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/programloader"
	"github.com/vm6502/vm6502/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.bin")
	data := []byte{0xa9, 0x05, 0x8d, 0x10, 0x00}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	ld := programloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "program")
	test.ExpectEquality(t, ld.HasLoaded(), false)

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, string(ld.Data), string(data))

	bad := programloader.NewLoader(fn)
	bad.Hash = "0000"
	err := bad.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.HashMismatch), true)
}

func TestMissing(t *testing.T) {
	ld := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.LoadError), true)
}
