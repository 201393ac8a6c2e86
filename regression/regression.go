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

package regression

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/database"
)

// DefaultDBFile is the name of the regression database in the resource
// directory.
const DefaultDBFile = "regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is set when the regression is being added to the database.
	//
	// returns false if the regression failed, along with a description of
	// the failure
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(programEntryType, deserialiseProgramEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the database. The deletion is confirmed
// by reading a 'y' from the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && err != io.EOF {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	confirm = strings.TrimSpace(confirm)
	if confirm != "y" && confirm != "Y" {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return nil
}

// RegressAdd runs the regression and adds the result to the database.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	msg := fmt.Sprintf("adding: %s", reg)
	ok, _, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		_ = db.EndSession(false)
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)

	return nil
}

// RegressRunTests runs the tests in the regression database. The filterKeys
// list specifies which entries to test. An empty list means that every entry
// should be tested.
//
// If failOnError is true then the first regression that cannot be run
// (rather than one that fails) stops the tests.
func RegressRunTests(output io.Writer, dbPath string, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}

	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "regression database is empty\n")
		return err
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry (%03d) does not satisfy Regressor interface", key)
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, failReason, err := reg.regress(false, output, msg)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "\rerror: %03d %s\n", key, reg)
			if verbose || failOnError {
				fmt.Fprintf(output, "  ^^ %s\n", err)
			}
			if failOnError {
				return err
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "\rfailure: %03d %s\n", key, reg)
			if verbose && failReason != "" {
				fmt.Fprintf(output, "  ^^ %s\n", failReason)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %03d %s\n", key, reg)
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keys...)

	numSkipped := db.NumEntries() - numSucceed - numFail - numError
	fmt.Fprintf(output, "regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)
	if numError > 0 {
		fmt.Fprintf(output, " [with errors]")
	}
	fmt.Fprintf(output, "\n")

	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}
