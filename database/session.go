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

package database

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vm6502/vm6502/curated"
)

// Sentinel error patterns.
const (
	DatabaseError    = "database: %v"
	DatabaseReadOnly = "database: session is read only"
)

// Activity is used to specify the activity of the session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session of the database. Entries are held in memory until EndSession().
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession reads the database at path. The init function is called
// before the file is read and should register the entry types.
//
// A missing file is only an error if activity is not ActivityCreating.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf(DatabaseError, err)
		}
	}

	if err := db.read(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read() error {
	f, err := os.Open(db.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && db.activity == ActivityCreating {
			return nil
		}
		return curated.Errorf(DatabaseError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		leader := strings.SplitN(s, fieldSep, numLeaderFields+1)
		if len(leader) < numLeaderFields {
			return curated.Errorf(DatabaseError, fmt.Sprintf("malformed entry at line %d", line))
		}

		key, err := strconv.Atoi(leader[leaderFieldKey])
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("invalid key (%s) at line %d", leader[leaderFieldKey], line))
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("duplicate key (%d) at line %d", key, line))
		}

		des, ok := db.entryTypes[leader[leaderFieldID]]
		if !ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("unrecognised entry type (%s) at line %d", leader[leaderFieldID], line))
		}

		var fields []string
		if len(leader) > numLeaderFields {
			fields = strings.Split(leader[numLeaderFields], fieldSep)
		}

		ent, err := des(fields)
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("line %d: %v", line, err))
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// EndSession ends the session. If commitChanges is true then the entries are
// written to the database file. Committing the changes of an ActivityReading
// session is an error.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges {
		return nil
	}

	if db.activity == ActivityReading {
		return curated.Errorf(DatabaseReadOnly)
	}

	s := strings.Builder{}
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range fields {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString("\n")
	}

	if err := os.WriteFile(db.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}
