package app

import (
	"time"

	"github.com/bft-labs/devcap/internal/ports"
)

// DefaultStep is the longest the loop sleeps without re-checking for a
// stop request.
const DefaultStep = 250 * time.Millisecond

// waiter sleeps in bounded steps so a stop request is honored within one
// step rather than after the whole interval.
type waiter struct {
	step  time.Duration
	sleep func(time.Duration)
	stop  func() bool
}

// wait sleeps for d and reports whether it was cut short by a stop request.
func (w waiter) wait(d time.Duration) bool {
	for d > 0 {
		if w.stop() {
			return true
		}
		s := w.step
		if s <= 0 || s > d {
			s = d
		}
		w.sleep(s)
		d -= s
	}
	return w.stop()
}

// stopAny combines observers, skipping nil ones.
func stopAny(obs ...ports.ShutdownObserver) func() bool {
	return func() bool {
		for _, o := range obs {
			if o != nil && o.Requested() {
				return true
			}
		}
		return false
	}
}
