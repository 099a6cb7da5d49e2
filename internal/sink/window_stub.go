//go:build !gocv

package sink

import (
	"errors"

	"github.com/bft-labs/devcap/internal/domain"
)

// ErrNoDisplay is returned when display support was not compiled in.
var ErrNoDisplay = errors.New("display support not compiled in (rebuild with -tags gocv)")

// Window is unavailable without the gocv build tag.
type Window struct{}

// NewWindow always fails without the gocv build tag.
func NewWindow(title string, onQuit func()) (*Window, error) {
	return nil, ErrNoDisplay
}

func (*Window) Consume(domain.Unit) error { return ErrNoDisplay }

func (*Window) Close() error { return nil }
