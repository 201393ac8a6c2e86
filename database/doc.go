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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file. The second argument
// is a description of the type of activity that will be happening during the
// session. ActivityCreating will create the file if it does not exist.
// ActivityReading sessions never write to the file.
//
// The third argument is the initialisation function. It is used to register
// the entry types that might be found in the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialise function takes the fields of an entry and returns a new
// database.Entry:
//
//	func deserialiseFoo(fields []string) (database.Entry, error) {
//		return &fooEntry{numOfFoos: fields[0]}, nil
//	}
//
// Each line of the file is one entry. The key and the entry type are the
// first two fields of the line. Fields are separated by commas. The final
// field of an entry can contain commas if the deserialiser expects a fixed
// number of fields.
package database
