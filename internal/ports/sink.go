package ports

import "github.com/bft-labs/devcap/internal/domain"

// Sink consumes acquired units. Consume is called synchronously, once per
// successful acquire, and must return before the next acquire begins.
// The unit must not be retained after Consume returns.
type Sink interface {
	Consume(unit domain.Unit) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(unit domain.Unit) error

// Consume calls f(unit).
func (f SinkFunc) Consume(unit domain.Unit) error { return f(unit) }
