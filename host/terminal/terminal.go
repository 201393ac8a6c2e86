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

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vm6502/vm6502/curated"
)

// Terminal wraps the input and output files used by the console.
type Terminal struct {
	input  *os.File
	output *os.File

	// input is an interactive terminal
	interactive bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. Files that are not terminals are handled as plain files.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("terminal: requires an input file")
	}
	if output == nil {
		return nil, curated.Errorf("terminal: requires an output file")
	}

	pt := &Terminal{
		input:       input,
		output:      output,
		interactive: term.IsTerminal(int(input.Fd())),
	}

	if pt.interactive {
		if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
			return nil, curated.Errorf("terminal: %v", err)
		}
		pt.cbreakAttr = pt.canAttr
		termios.Cfmakecbreak(&pt.cbreakAttr)
	}

	return pt, nil
}

// IsInteractive returns true if the input is a terminal.
func (pt *Terminal) IsInteractive() bool {
	return pt.interactive
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// Read implements the io.Reader interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.input.Read(p)
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}
