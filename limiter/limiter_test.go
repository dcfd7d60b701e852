// This file is part of Backbuffer.
//
// Backbuffer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Backbuffer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Backbuffer.  If not, see <https://www.gnu.org/licenses/>.

package limiter_test

import (
	"testing"
	"time"

	"github.com/macdoom/backbuffer/limiter"
	"github.com/macdoom/backbuffer/test"
)

func TestBadLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(1000)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectFailure(t, lim.SetLimit(-1))
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// the first trigger is immediate
	lim.Wait()

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five frames at 100fps is 50ms. be lenient with the upper bound
	elapsed := time.Since(start)
	test.ExpectSuccess(t, elapsed >= 30*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < 2*time.Second, elapsed)
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(10)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	lim.Wait()
	test.ExpectFailure(t, lim.HasWaited())

	time.Sleep(250 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
