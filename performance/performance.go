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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/logger"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// PerformanceBrake is the number of instructions between checks of the timer.
const PerformanceBrake = 100

// Check the performance of the emulator by running the system for the
// duration. The system should have a program loaded.
//
// The CPU, memory and trace profiles are created as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, sys *hardware.System, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var ticks int
	var instructionCount int

	runner := func() error {
		timesUp := time.After(dur)
		performanceBrake := 0

		continueCheck := func() (bool, error) {
			ticks += sys.CPU().LastResult.Cycles
			instructionCount++

			performanceBrake++
			if performanceBrake >= PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return false, timedOut
				default:
				}
			}
			return true, nil
		}

		for {
			err := sys.Run(continueCheck)
			if err == nil || errors.Is(err, timedOut) {
				return nil
			}

			// undecodable opcodes are treated the same as the host treats
			// them in RUN mode
			if !curated.Is(err, instructions.DecodeError) {
				return err
			}
			logger.Log(logger.Allow, "performance", err)
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	rate := CalcRate(ticks, dur.Seconds())
	_, err = fmt.Fprintf(output, "%.3f MHz (%d ticks, %d instructions in %.2f seconds)\n",
		rate/1000000, ticks, instructionCount, dur.Seconds())

	return err
}

// CalcRate returns the number of ticks per second.
func CalcRate(ticks int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(ticks) / seconds
}
