package device

import (
	"errors"
	"fmt"

	"github.com/bft-labs/devcap/internal/domain"
)

// State is the lifecycle state of a handle.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "Unopened"
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Driver performs the device I/O behind a Handle. The handle guarantees
// Grab is only called after a successful Open and Release at most once.
type Driver interface {
	Open(cfg domain.DeviceConfig) error
	Grab(policy domain.AcquirePolicy) (domain.Unit, error)
	Release() error
}

// Handle implements ports.Device on top of a Driver.
type Handle struct {
	driver Driver
	state  State
	cfg    domain.DeviceConfig
}

// NewHandle wraps driver in an unopened handle.
func NewHandle(driver Driver) *Handle {
	return &Handle{driver: driver, state: StateUnopened}
}

// State returns the current handle state.
func (h *Handle) State() State {
	return h.state
}

// Config returns the configuration the handle was opened with.
func (h *Handle) Config() domain.DeviceConfig {
	return h.cfg
}

// Open validates cfg and opens the driver. A failed open leaves the handle
// unopened; nothing needs to be released.
func (h *Handle) Open(cfg domain.DeviceConfig) error {
	switch h.state {
	case StateOpen:
		return domain.ErrAlreadyOpen
	case StateClosed:
		return domain.ErrClosed
	}

	if err := cfg.Validate(); err != nil {
		return &domain.OpenError{Reason: "configuration rejected", Err: err}
	}

	if err := h.openDriver(cfg); err != nil {
		var oe *domain.OpenError
		if errors.As(err, &oe) {
			return err
		}
		return &domain.OpenError{Reason: "driver open failed", Err: err}
	}

	h.cfg = cfg
	h.state = StateOpen
	return nil
}

// openDriver opens the driver, releasing whatever it acquired if it panics.
func (h *Handle) openDriver(cfg domain.DeviceConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			_ = h.driver.Release()
			err = &domain.OpenError{Reason: "driver fault", Err: fmt.Errorf("%v", r)}
		}
	}()
	return h.driver.Open(cfg)
}

// Acquire grabs one unit from the driver. Errors that the driver did not
// classify are reported as fatal.
func (h *Handle) Acquire(policy domain.AcquirePolicy) (domain.Unit, error) {
	switch h.state {
	case StateUnopened:
		return domain.Unit{}, domain.FatalError(domain.ErrNotOpen)
	case StateClosed:
		return domain.Unit{}, domain.FatalError(domain.ErrClosed)
	}

	unit, err := h.driver.Grab(policy)
	if err != nil {
		var ae *domain.AcquireError
		if errors.As(err, &ae) {
			return domain.Unit{}, err
		}
		return domain.Unit{}, domain.FatalError(err)
	}
	return unit, nil
}

// Close releases the driver if it was opened. Later calls are no-ops.
func (h *Handle) Close() error {
	prev := h.state
	h.state = StateClosed

	if prev != StateOpen {
		return nil
	}
	if err := h.driver.Release(); err != nil {
		return fmt.Errorf("release device: %w", err)
	}
	return nil
}

// Info reports driver identity when the driver supports it and the handle
// is open.
func (h *Handle) Info() domain.DeviceInfo {
	if h.state != StateOpen {
		return domain.DeviceInfo{}
	}
	if d, ok := h.driver.(interface{ Info() domain.DeviceInfo }); ok {
		return d.Info()
	}
	return domain.DeviceInfo{}
}
