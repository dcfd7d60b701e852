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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FPSLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// FPSLimiter will trigger every frames per second.
type FPSLimiter struct {
	// nanoseconds per frame. read by the ticker goroutine
	perFrame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FPSLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FPSLimiter, error) {
	lim := &FPSLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	go func() {
		adjusted := time.Duration(lim.perFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// drift is corrected on the next frame
			perFrame := time.Duration(lim.perFrame.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - perFrame
			if adjusted < 0 || adjusted > perFrame*2 {
				adjusted = perFrame
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FPSLimiter waits.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frame rate must be positive (%d)", framesPerSecond)
	}
	lim.perFrame.Store(int64(time.Second) / int64(framesPerSecond))
	return nil
}

// Wait will block until trigger.
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FPSLimiter) Stop() {
	close(lim.quit)
}
