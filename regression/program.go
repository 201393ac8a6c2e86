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
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/database"
	"github.com/vm6502/vm6502/digest"
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/setup"
)

const programEntryType = "program"

// number of ticks between updates of the device digest
const digestInterval = 10000

const (
	programFieldTicks int = iota
	programFieldExperimental
	programFieldOrigin
	programFieldUID
	programFieldLayout
	programFieldDigest
	programFieldOutputDigest

	// the program filename is the last field because it may contain the
	// field separator
	programFieldProgram
	numProgramFields
)

// ProgramRegression is the simplest regression type. It runs a program for
// a fixed number of ticks and compares the fingerprint of the system and of
// the ASCIIIO output with the recorded fingerprints.
type ProgramRegression struct {
	Config setup.Config
	Ticks  int

	// fingerprints recorded when the regression was added
	Digest       string
	OutputDigest string
}

// NewProgramRegression is the preferred method of initialisation for the
// ProgramRegression type.
func NewProgramRegression(cfg setup.Config, ticks int) (*ProgramRegression, error) {
	if ticks <= 0 {
		return nil, curated.Errorf("regression: program: number of ticks must be greater than zero")
	}

	if strings.Contains(cfg.Layout, ",") || strings.Contains(cfg.UID, ",") {
		return nil, curated.Errorf("regression: program: layout and uid cannot contain commas")
	}

	// the program is found relative to the working directory when the tests
	// are run so the absolute path is stored
	pth, err := filepath.Abs(cfg.Program)
	if err != nil {
		return nil, curated.Errorf("regression: program: %v", err)
	}
	cfg.Program = pth

	return &ProgramRegression{
		Config: cfg,
		Ticks:  ticks,
	}, nil
}

func deserialiseProgramEntry(fields []string) (database.Entry, error) {
	if len(fields) < numProgramFields {
		return nil, curated.Errorf("regression: program: too few fields")
	}

	reg := &ProgramRegression{}

	var err error
	reg.Ticks, err = strconv.Atoi(fields[programFieldTicks])
	if err != nil {
		return nil, curated.Errorf("regression: program: invalid ticks field (%s)", fields[programFieldTicks])
	}

	reg.Config.Experimental, err = strconv.ParseBool(fields[programFieldExperimental])
	if err != nil {
		return nil, curated.Errorf("regression: program: invalid experimental field (%s)", fields[programFieldExperimental])
	}

	reg.Config.Origin, err = strconv.Atoi(fields[programFieldOrigin])
	if err != nil {
		return nil, curated.Errorf("regression: program: invalid origin field (%s)", fields[programFieldOrigin])
	}

	reg.Config.UID = fields[programFieldUID]
	reg.Config.Layout = fields[programFieldLayout]
	reg.Digest = fields[programFieldDigest]
	reg.OutputDigest = fields[programFieldOutputDigest]
	reg.Config.Program = strings.Join(fields[programFieldProgram:], ",")

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg ProgramRegression) EntryType() string {
	return programEntryType
}

// Serialise implements the database.Entry interface.
func (reg *ProgramRegression) Serialise() ([]string, error) {
	return []string{
		strconv.Itoa(reg.Ticks),
		strconv.FormatBool(reg.Config.Experimental),
		strconv.Itoa(reg.Config.Origin),
		reg.Config.UID,
		reg.Config.Layout,
		reg.Digest,
		reg.OutputDigest,
		reg.Config.Program,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg ProgramRegression) CleanUp() error {
	return nil
}

func (reg ProgramRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s ticks=%d", reg.EntryType(), filepath.Base(reg.Config.Program), reg.Ticks))
	if reg.Config.Origin >= 0 {
		s.WriteString(fmt.Sprintf(" origin=%04x", reg.Config.Origin))
	}
	if reg.Config.Experimental {
		s.WriteString(" experimental")
	}
	s.WriteString(fmt.Sprintf(" (%s)", reg.Config.Layout))
	return s.String()
}

// regress implements the regression.Regressor interface.
func (reg *ProgramRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	fmt.Fprint(output, msg)

	sys, _, err := setup.Build(nil, reg.Config)
	if err != nil {
		return false, "", curated.Errorf("regression: program: %v", err)
	}

	dig := digest.NewDevices(sys)
	out := digest.NewOutput()
	if asc, ok := setup.FindDevice[*devices.ASCII](sys); ok {
		asc.AttachOutput(out)
	}

	for remaining := reg.Ticks; remaining > 0; {
		n := min(remaining, digestInterval)

		// undecodable opcodes are part of the behaviour being recorded
		if err := sys.TickX(n); err != nil && !curated.Is(err, instructions.DecodeError) {
			return false, "", curated.Errorf("regression: program: %v", err)
		}

		dig.Update()
		remaining -= n
	}

	if newRegression {
		reg.Digest = dig.Hash()
		reg.OutputDigest = out.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.Digest {
		return false, "system digest mismatch", nil
	}

	if out.Hash() != reg.OutputDigest {
		return false, fmt.Sprintf("output digest mismatch after %d bytes", out.Len()), nil
	}

	return true, "", nil
}
