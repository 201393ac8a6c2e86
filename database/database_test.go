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

package database_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/database"
	"github.com/vm6502/vm6502/test"
)

type fooEntry struct {
	name    string
	comment string
	cleaned *int
}

func (ent *fooEntry) EntryType() string {
	return "foo"
}

func (ent *fooEntry) String() string {
	return ent.name
}

func (ent *fooEntry) Serialise() ([]string, error) {
	return []string{ent.name, ent.comment}, nil
}

func (ent *fooEntry) CleanUp() error {
	if ent.cleaned != nil {
		*ent.cleaned++
	}
	return nil
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType("foo", func(fields []string) (database.Entry, error) {
		if len(fields) < 2 {
			return nil, curated.Errorf("too few fields")
		}
		return &fooEntry{name: fields[0], comment: strings.Join(fields[1:], ",")}, nil
	})
}

func TestSession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// reading a database that doesn't exist fails
	_, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	test.ExpectEquality(t, curated.Is(err, database.DatabaseError), true)

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	w := &test.Writer{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	key, err := db.Add(&fooEntry{name: "a", comment: "first"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)
	key, err = db.Add(&fooEntry{name: "b", comment: "with, commas"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "000,foo,a,first\n001,foo,b,with, commas\n")

	db, err = database.StartSession(pth, database.ActivityReading, initDBSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.(*fooEntry).comment, "with, commas")

	w.Clear()
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 a\n001 b\nTotal: 2\n")

	// read only sessions cannot be changed
	_, err = db.Add(&fooEntry{name: "c"})
	test.ExpectEquality(t, curated.Is(err, database.DatabaseReadOnly), true)
	test.ExpectEquality(t, curated.Is(db.Delete(0), database.DatabaseReadOnly), true)
	test.ExpectEquality(t, curated.Is(db.EndSession(true), database.DatabaseReadOnly), true)
	test.ExpectSuccess(t, db.EndSession(false))
}

func TestDelete(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	test.DemandSuccess(t, err)

	cleaned := 0
	for _, n := range []string{"a", "b", "c"} {
		_, err := db.Add(&fooEntry{name: n, comment: "-", cleaned: &cleaned})
		test.DemandSuccess(t, err)
	}

	test.ExpectSuccess(t, db.Delete(1))
	test.ExpectEquality(t, cleaned, 1)
	test.ExpectFailure(t, db.Delete(1))

	// the free key is reused
	key, err := db.Add(&fooEntry{name: "d", comment: "-"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)

	var names []string
	_, err = db.SelectAll(func(_ int, ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "adc")

	names = names[:0]
	last, err := db.SelectKeys(func(_ int, ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	}, 2, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "ca")
	test.ExpectEquality(t, last.String(), "a")

	_, err = db.SelectKeys(nil, 99)
	test.ExpectFailure(t, err)
}

func TestMalformed(t *testing.T) {
	for _, s := range []string{
		"000\n",
		"x,foo,a,b\n",
		"000,bar,a,b\n",
		"000,foo,a\n",
		"000,foo,a,b\n000,foo,c,d\n",
	} {
		pth := filepath.Join(t.TempDir(), "db")
		test.DemandSuccess(t, os.WriteFile(pth, []byte(s), 0o600))
		_, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
		test.ExpectEquality(t, curated.Is(err, database.DatabaseError), true, s)
	}

	// duplicate entry types
	_, err := database.StartSession(filepath.Join(t.TempDir(), "db"), database.ActivityCreating, func(db *database.Session) error {
		if err := initDBSession(db); err != nil {
			return err
		}
		return initDBSession(db)
	})
	test.ExpectFailure(t, err)
}
