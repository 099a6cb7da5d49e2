package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/devcap/internal/app"
	"github.com/bft-labs/devcap/internal/device"
	"github.com/bft-labs/devcap/internal/domain"
)

// Config holds CLI configuration for devcap.
type Config struct {
	// Capture options
	Driver         string
	Resolution     string
	FrameRate      int
	SettingsPath   string
	DepthMode      string
	Device         int
	Count          int
	Interval       time.Duration
	AcquireTimeout time.Duration
	Display        bool

	// Heartbeat options
	Message         string
	IntervalSeconds int

	WaitStep    time.Duration
	LogLevel    string
	LogFormat   string
	WatchConfig bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	dc := domain.DefaultDeviceConfig()
	return Config{
		Driver:          device.KindSynthetic,
		Resolution:      string(dc.Resolution),
		FrameRate:       dc.FrameRate,
		SettingsPath:    dc.SettingsPath,
		DepthMode:       string(dc.DepthMode),
		Message:         "Hello from devcap!",
		IntervalSeconds: 10,
		WaitStep:        app.DefaultStep,
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

// validateCommon checks the options shared by every command.
func (c *Config) validateCommon() error {
	if c.WaitStep <= 0 || c.WaitStep > time.Second {
		return &domain.ConfigError{Field: "wait-step", Value: c.WaitStep.String(), Reason: "must be in (0, 1s]"}
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return &domain.ConfigError{Field: "log-format", Value: c.LogFormat, Reason: "want console or json"}
	}
	return nil
}

// CapturePlan validates the capture options and builds the session plan.
func (c *Config) CapturePlan() (app.Plan, error) {
	if err := c.validateCommon(); err != nil {
		return app.Plan{}, err
	}
	if _, err := device.New(c.Driver); err != nil {
		return app.Plan{}, &domain.ConfigError{Field: "driver", Value: c.Driver, Reason: fmt.Sprintf("want one of %v", device.Kinds())}
	}
	res, err := domain.ParseResolution(c.Resolution)
	if err != nil {
		return app.Plan{}, err
	}
	depth, err := domain.ParseDepthMode(c.DepthMode)
	if err != nil {
		return app.Plan{}, err
	}
	if c.Count < 0 {
		return app.Plan{}, &domain.ConfigError{Field: "count", Value: strconv.Itoa(c.Count), Reason: "must not be negative"}
	}
	if c.Interval < 0 {
		return app.Plan{}, &domain.ConfigError{Field: "interval", Value: c.Interval.String(), Reason: "must not be negative"}
	}
	if c.AcquireTimeout < 0 {
		return app.Plan{}, &domain.ConfigError{Field: "acquire-timeout", Value: c.AcquireTimeout.String(), Reason: "must not be negative"}
	}

	dc := domain.DeviceConfig{
		Resolution:   res,
		FrameRate:    c.FrameRate,
		SettingsPath: c.SettingsPath,
		DepthMode:    depth,
		DeviceIndex:  c.Device,
		Message:      c.Message,
	}
	if err := dc.Validate(); err != nil {
		return app.Plan{}, err
	}

	return app.Plan{
		Driver: c.Driver,
		Device: dc,
		Loop: app.LoopConfig{
			Interval: c.Interval,
			Step:     c.WaitStep,
			MaxUnits: uint64(c.Count),
			Policy:   domain.AcquirePolicy{Timeout: c.AcquireTimeout},
		},
	}, nil
}

// HeartbeatPlan validates the heartbeat options and builds the session plan.
func (c *Config) HeartbeatPlan() (app.Plan, error) {
	if err := c.validateCommon(); err != nil {
		return app.Plan{}, err
	}
	if c.Message == "" {
		return app.Plan{}, &domain.ConfigError{Field: "message", Reason: "must not be empty"}
	}
	if c.IntervalSeconds <= 0 {
		return app.Plan{}, &domain.ConfigError{Field: "interval-seconds", Value: strconv.Itoa(c.IntervalSeconds), Reason: "must be positive"}
	}
	if c.Count < 0 {
		return app.Plan{}, &domain.ConfigError{Field: "count", Value: strconv.Itoa(c.Count), Reason: "must not be negative"}
	}

	dc := domain.DefaultDeviceConfig()
	dc.SettingsPath = ""
	dc.Message = c.Message

	return app.Plan{
		Driver: device.KindHeartbeat,
		Device: dc,
		Loop: app.LoopConfig{
			Interval: time.Duration(c.IntervalSeconds) * time.Second,
			Step:     c.WaitStep,
			MaxUnits: uint64(c.Count),
		},
	}, nil
}

// Resolve layers the config file at path (if it exists) and the
// environment over base. Fields whose flag was set explicitly keep their
// base value, giving the precedence flags > env > file > defaults.
func Resolve(base Config, path string, changed map[string]bool) (Config, error) {
	cfg := base
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Range checks are left to validation.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return &domain.ConfigError{Field: flag, Value: value, Reason: err.Error()}
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Range checks are left to validation so bad values are reported, not dropped.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &domain.ConfigError{Field: flag, Value: value, Reason: "not an integer"}
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return &domain.ConfigError{Field: flag, Value: value, Reason: "not a boolean"}
	}
	*dst = b
	return nil
}
