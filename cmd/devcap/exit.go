package main

import (
	"errors"

	"github.com/bft-labs/devcap/internal/domain"
)

const exitConfig = domain.CodeConfigError

// exitError carries a process exit code out of a command. A nil err means
// the reason was already written to the status stream.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return domain.CodeOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var ce *domain.ConfigError
	if errors.As(err, &ce) {
		return domain.CodeConfigError
	}
	var oe *domain.OpenError
	if errors.As(err, &oe) {
		return domain.CodeOpenFailed
	}
	return domain.CodeFailure
}
