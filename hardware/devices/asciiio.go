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

package devices

import (
	"io"
	"sync"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/logger"
)

// Register offsets of the ASCIIIO device.
const (
	// write emits a character. read returns the next input character or zero
	// if there is no input
	ASCIIData = iota

	// bit 0 is set if input is available. bit 1 is set if output is waiting
	// to be flushed
	ASCIIStatus

	// number of characters waiting to be read, capped at 255
	ASCIICount

	// write ASCIIClearInput or ASCIIClearOutput to discard the queued
	// characters. reads as zero
	ASCIIControl

	numASCIIRegisters
)

// Status bits of the ASCIIStatus register.
const (
	ASCIIInputAvailable = 0x01
	ASCIIOutputPending  = 0x02
)

// Values for the ASCIIControl register.
const (
	ASCIIClearInput  = 0x01
	ASCIIClearOutput = 0x02
)

// MaxWidgetText is the maximum number of characters kept for the next
// TextUpdate. When the limit is reached the oldest half is dropped.
const MaxWidgetText = 4096

// TextUpdate is the Update returned by the ASCIIIO device. It contains the
// characters written since the previous update.
type TextUpdate struct {
	Text string
}

func (u TextUpdate) String() string {
	return u.Text
}

// ASCII is a character I/O device. Output is queued and written to the
// attached io.Writer on the next Tick(). Input is queued by the host with
// Feed().
type ASCII struct {
	// input is fed from the host, possibly from another goroutine
	crit  sync.Mutex
	input []uint8

	output []uint8
	out    io.Writer

	// characters written since the last call to Widget(). at most
	// MaxWidgetText characters
	text []uint8
}

// NewASCII is the preferred method of initialisation for the ASCII type.
func NewASCII() *ASCII {
	return &ASCII{}
}

// Label implements the Device interface.
func (asc *ASCII) Label() string {
	return ASCIIIO.String()
}

// Size implements the Device interface.
func (asc *ASCII) Size() int {
	return numASCIIRegisters
}

// AttachOutput sets the io.Writer that output is flushed to. A nil writer
// discards output on flush.
func (asc *ASCII) AttachOutput(out io.Writer) {
	asc.out = out
}

// Feed queues characters for the program to read.
func (asc *ASCII) Feed(p []byte) {
	asc.crit.Lock()
	defer asc.crit.Unlock()
	asc.input = append(asc.input, p...)
}

// Tick implements the Device interface. Flushes pending output. A failed
// write is logged and the output is discarded.
func (asc *ASCII) Tick() {
	if len(asc.output) == 0 {
		return
	}
	if asc.out != nil {
		n, err := asc.out.Write(asc.output)
		if err == nil && n < len(asc.output) {
			err = curated.Errorf("asciiio: short write (%d of %d bytes)", n, len(asc.output))
		}
		if err != nil {
			logger.Log(logger.Allow, "asciiio", err)
		}
	}
	asc.output = asc.output[:0]
}

func (asc *ASCII) reset() {
	asc.crit.Lock()
	asc.input = asc.input[:0]
	asc.crit.Unlock()
	asc.output = asc.output[:0]
	asc.text = asc.text[:0]
}

// ResetSystem implements the Device interface. Queued input and output are
// discarded.
func (asc *ASCII) ResetSystem() {
	asc.reset()
}

// ResetHard implements the Device interface. Queued input and output are
// discarded.
func (asc *ASCII) ResetHard() {
	asc.reset()
}

func (asc *ASCII) read(offset uint16, pop bool) uint8 {
	asc.crit.Lock()
	defer asc.crit.Unlock()

	switch offset {
	case ASCIIData:
		if len(asc.input) == 0 {
			return 0
		}
		v := asc.input[0]
		if pop {
			asc.input = asc.input[1:]
		}
		return v
	case ASCIIStatus:
		var v uint8
		if len(asc.input) > 0 {
			v |= ASCIIInputAvailable
		}
		if len(asc.output) > 0 {
			v |= ASCIIOutputPending
		}
		return v
	case ASCIICount:
		return uint8(min(len(asc.input), 255))
	}

	return 0
}

// Read implements the Device interface. Reading the data register removes
// the character from the input queue.
func (asc *ASCII) Read(offset uint16) uint8 {
	return asc.read(offset, true)
}

// Peek implements the Peeker interface.
func (asc *ASCII) Peek(offset uint16) uint8 {
	return asc.read(offset, false)
}

// Write implements the Device interface. Writes to the status and count
// registers are ignored.
func (asc *ASCII) Write(offset uint16, value uint8) error {
	switch offset {
	case ASCIIData:
		asc.output = append(asc.output, value)
		if len(asc.text) >= MaxWidgetText {
			asc.text = append(asc.text[:0], asc.text[len(asc.text)-MaxWidgetText/2:]...)
		}
		asc.text = append(asc.text, value)
	case ASCIIControl:
		if value&ASCIIClearInput == ASCIIClearInput {
			asc.crit.Lock()
			asc.input = asc.input[:0]
			asc.crit.Unlock()
		}
		if value&ASCIIClearOutput == ASCIIClearOutput {
			asc.output = asc.output[:0]
		}
	}
	return nil
}

// Snapshot implements the Snapshotter interface. The snapshot is the value of
// each register as it would be read, without removing input.
func (asc *ASCII) Snapshot() []uint8 {
	s := make([]uint8, numASCIIRegisters)
	for i := range s {
		s[i] = asc.Peek(uint16(i))
	}
	return s
}

// Widget implements the Widget interface. Returns a TextUpdate.
func (asc *ASCII) Widget() Update {
	u := TextUpdate{Text: string(asc.text)}
	asc.text = asc.text[:0]
	return u
}
