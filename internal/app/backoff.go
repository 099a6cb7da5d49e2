package app

import (
	"math/rand"
	"time"
)

// Default pause after consecutive transient acquire errors.
const (
	DefaultBackoffInitial = 10 * time.Millisecond
	DefaultBackoffMax     = time.Second
)

// backoff implements exponential backoff with jitter. It only computes
// durations; the loop waits them out interruptibly.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
}

// newBackoff creates a new backoff with the given initial and max durations.
func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{
		initial: initial,
		max:     max,
		current: initial,
	}
}

// Next returns the current backoff duration with ±20% jitter and doubles
// it for the following call.
func (b *backoff) Next() time.Duration {
	jitter := float64(b.current) * 0.2 * (rand.Float64()*2 - 1)
	d := time.Duration(float64(b.current) + jitter)

	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

// Reset resets the backoff to the initial duration.
func (b *backoff) Reset() {
	b.current = b.initial
}

// Current returns the current backoff duration.
func (b *backoff) Current() time.Duration {
	return b.current
}
