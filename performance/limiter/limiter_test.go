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

package limiter_test

import (
	"testing"
	"time"

	"github.com/vm6502/vm6502/performance/limiter"
	"github.com/vm6502/vm6502/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// one second has not yet passed
	test.ExpectEquality(t, lim.HasWaited(), false)

	lim.SetLimit(200)
	test.ExpectEquality(t, lim.Rate(), 200)
	lim.SetLimit(-1)
	test.ExpectEquality(t, lim.Rate(), 200)

	start := time.Now()
	for range 4 {
		lim.Wait()
	}
	test.ExpectEquality(t, time.Since(start) >= 10*time.Millisecond, true)
}
