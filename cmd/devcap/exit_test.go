package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bft-labs/devcap/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, domain.CodeOK},
		{"explicit code", &exitError{code: domain.CodeAcquireFatal}, domain.CodeAcquireFatal},
		{"config error", &domain.ConfigError{Field: "resolution"}, domain.CodeConfigError},
		{"wrapped config error", fmt.Errorf("load: %w", &domain.ConfigError{Field: "x"}), domain.CodeConfigError},
		{"open error", &domain.OpenError{Reason: "no device"}, domain.CodeOpenFailed},
		{"anything else", errors.New("boom"), domain.CodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Message(t *testing.T) {
	if msg := (&exitError{code: 3}).Error(); msg != "" {
		t.Errorf("Error() = %q, want empty for reported errors", msg)
	}
	inner := errors.New("bad flag")
	ee := &exitError{code: 2, err: inner}
	if !errors.Is(ee, inner) {
		t.Error("exitError should unwrap to its cause")
	}
}
