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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "memory", "device added")
	log.Log(logger.Allow, "cpu", "reset")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: device added\ncpu: reset\n")

	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "memory: device added\ncpu: reset\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: reset\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	w.Reset()
	log.Tail(w, -1)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeat(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "not yet implemented: PHA")
	log.Log(logger.Allow, "cpu", "not yet implemented: PHA")
	log.Log(logger.Allow, "cpu", "not yet implemented: PHA")
	log.Log(logger.Allow, "cpu", "not yet implemented: PLA")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: not yet implemented: PHA (repeat x3)\ncpu: not yet implemented: PLA\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "tick", "%d", 1)
	log.Logf(logger.Allow, "tick", "%d", 2)
	log.Logf(logger.Allow, "tick", "%d", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tick: 2\ntick: 3\n")
	test.ExpectEquality(t, len(log.Copy()), 2)
}

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit{}, "tag", "detail")
	log.Logf(prohibit{}, "tag", "detail %d", 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

type stringer struct{}

func (_ stringer) String() string {
	return "stringer"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("an error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Log(logger.Allow, "tag", "with\nnewline")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: an error\ntag: stringer\ntag: 100\ntag: withnewline\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "system", "tick")
	test.ExpectEquality(t, w.String(), "system: tick\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "system", "tock")
	test.ExpectEquality(t, w.String(), "system: tick\n")
}
