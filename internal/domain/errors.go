package domain

import (
	"errors"
	"fmt"
)

// Handle state errors. These can be checked with errors.Is.
var (
	// ErrAlreadyOpen is returned when Open is called on an open handle.
	ErrAlreadyOpen = errors.New("devcap: device already open")

	// ErrNotOpen is returned when Acquire is called before Open.
	ErrNotOpen = errors.New("devcap: device not open")

	// ErrClosed is returned when a closed handle is used again.
	ErrClosed = errors.New("devcap: device closed")
)

// ConfigError describes an invalid or missing configuration parameter.
// It is fatal at startup and never retried.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// OpenError is returned when a device cannot be reached or rejects its
// configuration.
type OpenError struct {
	Reason string
	Err    error
}

func (e *OpenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("open device: %s: %v", e.Reason, e.Err)
	}
	return "open device: " + e.Reason
}

func (e *OpenError) Unwrap() error { return e.Err }

// AcquireKind classifies acquire failures.
type AcquireKind int

const (
	// Transient failures (a missed frame) are skipped by the loop.
	Transient AcquireKind = iota
	// Fatal failures (device gone) stop the loop.
	Fatal
)

func (k AcquireKind) String() string {
	if k == Fatal {
		return "fatal"
	}
	return "transient"
}

// AcquireError is returned by a failed acquire call.
type AcquireError struct {
	Kind AcquireKind
	Err  error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("acquire (%s): %v", e.Kind, e.Err)
}

func (e *AcquireError) Unwrap() error { return e.Err }

// TransientError wraps err as a transient acquire failure.
func TransientError(err error) error {
	return &AcquireError{Kind: Transient, Err: err}
}

// FatalError wraps err as a fatal acquire failure.
func FatalError(err error) error {
	return &AcquireError{Kind: Fatal, Err: err}
}

// IsTransient reports whether err is a transient acquire failure.
// Errors that are not an *AcquireError are treated as fatal.
func IsTransient(err error) bool {
	var ae *AcquireError
	return errors.As(err, &ae) && ae.Kind == Transient
}
