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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		sys.TickX(batch)
//	}
package limiter

import (
	"fmt"
	"time"

	"github.com/vm6502/vm6502/curated"
)

// Limiter will trigger a fixed number of times every second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, curated.Errorf("limiter: %v", fmt.Sprintf("rate must be positive (%d)", rate))
	}
	lim := &Limiter{
		rate:   rate,
		ticker: time.NewTicker(period(rate)),
	}
	return lim, nil
}

func period(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// SetLimit changes the rate at which the Limiter triggers. Values of zero or
// less are ignored.
func (lim *Limiter) SetLimit(rate int) {
	if rate <= 0 {
		return
	}
	lim.rate = rate
	lim.ticker.Reset(period(rate))
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger has already happened and false if
// it is still yet to happen. The trigger is consumed.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
