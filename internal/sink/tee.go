package sink

import (
	"errors"

	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
)

// Tee hands each unit to every sink in order. All sinks see the unit even
// if an earlier one fails; the errors are joined.
func Tee(sinks ...ports.Sink) ports.Sink {
	return tee(sinks)
}

type tee []ports.Sink

func (t tee) Consume(u domain.Unit) error {
	var errs []error
	for _, s := range t {
		if err := s.Consume(u); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
