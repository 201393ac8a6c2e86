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
	"context"
	"errors"
	"io"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/performance/limiter"
)

// number of times per second that input is checked when the tick rate is
// limited.
const batchesPerSecond = 60

// number of ticks between input checks when the tick rate is unlimited.
const unlimitedBatch = 1000

// Options for the Run() function.
type Options struct {
	// ticks per second. zero or less is unlimited
	Rate int
}

// Run the system until the context is cancelled. Input from the terminal is
// fed to the ASCII device, if there is one, and output from the device is
// written to the terminal.
//
// Undecodable opcodes are logged and do not stop the emulation.
func Run(ctx context.Context, pt *Terminal, sys *hardware.System, asc *devices.ASCII, opts Options) (rerr error) {
	batch := unlimitedBatch

	var lim *limiter.Limiter
	if opts.Rate > 0 {
		var err error
		lim, err = limiter.NewLimiter(batchesPerSecond)
		if err != nil {
			return err
		}
		defer lim.Stop()
		batch = max(1, opts.Rate/batchesPerSecond)
	}

	if err := pt.CBreakMode(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	defer func() {
		if err := pt.CanonicalMode(); err != nil && rerr == nil {
			rerr = curated.Errorf("terminal: %v", err)
		}
	}()

	input := make(chan []byte, 16)
	if asc != nil {
		asc.AttachOutput(pt)
		defer asc.AttachOutput(nil)
		go readInput(ctx, pt, input)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-input:
			asc.Feed(p)
		default:
		}

		if lim != nil {
			lim.Wait()
		}

		err := sys.TickX(batch)
		if err != nil {
			if !curated.Is(err, instructions.DecodeError) {
				return err
			}
			logger.Log(logger.Allow, "terminal", err)
		}
	}
}

// readInput sends blocks of input to the channel until the input is closed
// or the context is cancelled.
//
// A cancelled context is only noticed once Read() returns. Run() does not
// wait for readInput so a goroutine blocked on a terminal with no further
// input remains until the next keypress or the end of the process.
func readInput(ctx context.Context, r io.Reader, input chan<- []byte) {
	b := make([]byte, 256)
	for {
		n, err := r.Read(b)
		if n > 0 {
			p := make([]byte, n)
			copy(p, b[:n])
			select {
			case input <- p:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "terminal", err)
			}
			return
		}
	}
}
