package ports

import "github.com/bft-labs/devcap/internal/domain"

// Device is exclusive ownership of one external hardware or software
// resource. It is not safe for concurrent use: only the lifecycle manager
// that opened it may call its methods, and only from one goroutine.
type Device interface {
	// Open configures and starts the device. It fails with
	// domain.ErrAlreadyOpen on an open handle and with *domain.OpenError
	// when the device cannot be reached or rejects cfg.
	Open(cfg domain.DeviceConfig) error

	// Acquire returns the next unit. Failures are *domain.AcquireError;
	// transient ones may be retried, fatal ones end the session.
	Acquire(policy domain.AcquirePolicy) (domain.Unit, error)

	// Close releases every underlying resource. Calls after the first
	// are no-ops and return nil.
	Close() error
}

// Describer is implemented by devices that can report identity
// information once open.
type Describer interface {
	Info() domain.DeviceInfo
}
