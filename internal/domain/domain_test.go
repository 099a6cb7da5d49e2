package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in      string
		want    Resolution
		wantErr bool
	}{
		{"HD720", ResolutionHD720, false},
		{"hd1080", ResolutionHD1080, false},
		{" vga ", ResolutionVGA, false},
		{"4K", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseResolution(%q) = %v, want %v", tt.in, got, tt.want)
			}
			var ce *ConfigError
			if tt.wantErr && !errors.As(err, &ce) {
				t.Errorf("error %v is not a *ConfigError", err)
			}
		})
	}
}

func TestResolution_Size(t *testing.T) {
	w, h := ResolutionHD720.Size()
	if w != 1280 || h != 720 {
		t.Errorf("HD720.Size() = %dx%d, want 1280x720", w, h)
	}
}

func TestParseDepthMode(t *testing.T) {
	if got, err := ParseDepthMode("none"); err != nil || got != DepthNone {
		t.Errorf("ParseDepthMode(none) = %v, %v", got, err)
	}
	if _, err := ParseDepthMode("fast"); err == nil {
		t.Error("ParseDepthMode(fast) expected error")
	}
}

func TestDeviceConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*DeviceConfig)
		wantField string
	}{
		{"defaults are valid", func(*DeviceConfig) {}, ""},
		{"zero frame rate", func(c *DeviceConfig) { c.FrameRate = 0 }, "frame-rate"},
		{"unknown resolution", func(c *DeviceConfig) { c.Resolution = "8K" }, "resolution"},
		{"unknown depth mode", func(c *DeviceConfig) { c.DepthMode = "MAX" }, "depth-mode"},
		{"negative device", func(c *DeviceConfig) { c.DeviceIndex = -1 }, "device"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDeviceConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", ce.Field, tt.wantField)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	base := errors.New("missed frame")
	if !IsTransient(TransientError(base)) {
		t.Error("TransientError should be transient")
	}
	if IsTransient(FatalError(base)) {
		t.Error("FatalError should not be transient")
	}
	if IsTransient(base) {
		t.Error("plain errors should be treated as fatal")
	}
	wrapped := fmt.Errorf("grab: %w", TransientError(base))
	if !IsTransient(wrapped) {
		t.Error("wrapped transient error should be transient")
	}
	if !errors.Is(wrapped, base) {
		t.Error("AcquireError should unwrap to its cause")
	}
}

func TestOpenError_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := &OpenError{Reason: "settings path unreachable", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("OpenError should unwrap to its cause")
	}
	if got := err.Error(); got != "open device: settings path unreachable: no such file" {
		t.Errorf("Error() = %q", got)
	}
}

func TestExitStatus_Code(t *testing.T) {
	tests := []struct {
		status ExitStatus
		name   string
		code   int
	}{
		{ExitCompleted, "Completed", CodeOK},
		{ExitShutdownRequested, "ShutdownRequested", CodeOK},
		{ExitAcquireFatal, "AcquireFatal", CodeAcquireFatal},
		{ExitOpenFailed, "OpenFailed", CodeOpenFailed},
		{ExitReloadRequested, "ReloadRequested", CodeFailure},
		{ExitStatus(99), "Unknown", CodeFailure},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.name {
			t.Errorf("ExitStatus(%d).String() = %s, want %s", tt.status, got, tt.name)
		}
		if got := tt.status.Code(); got != tt.code {
			t.Errorf("%s.Code() = %d, want %d", tt.name, got, tt.code)
		}
	}
}
