package cliconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/devcap/internal/domain"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
// Integers and bools are pointers so a present zero or negative value is
// applied and rejected by validation instead of being mistaken for unset.
type FileConfig struct {
	Driver         string `toml:"driver"`
	Resolution     string `toml:"resolution"`
	FrameRate      *int   `toml:"frame_rate"`
	SettingsPath   string `toml:"settings_path"`
	DepthMode      string `toml:"depth_mode"`
	Device         *int   `toml:"device"`
	Count          *int   `toml:"count"`
	Interval       string `toml:"interval"`
	AcquireTimeout string `toml:"acquire_timeout"`
	Display        *bool  `toml:"display"`

	Message         string `toml:"message"`
	IntervalSeconds *int   `toml:"interval_seconds"`

	WaitStep    string `toml:"wait_step"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	WatchConfig *bool  `toml:"watch_config"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected so typos fail at startup.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, &domain.ConfigError{Field: "config file", Value: path, Reason: err.Error()}
	}
	dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return fc, &domain.ConfigError{Field: "config file", Value: path, Reason: sme.String()}
		}
		return fc, &domain.ConfigError{Field: "config file", Value: path, Reason: err.Error()}
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.devcap/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".devcap", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("driver", fc.Driver, &cfg.Driver)
	s.setString("resolution", fc.Resolution, &cfg.Resolution)
	s.setString("settings-path", fc.SettingsPath, &cfg.SettingsPath)
	s.setString("depth-mode", fc.DepthMode, &cfg.DepthMode)
	s.setString("message", fc.Message, &cfg.Message)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	s.setInt("frame-rate", fc.FrameRate, &cfg.FrameRate)
	s.setInt("device", fc.Device, &cfg.Device)
	s.setInt("count", fc.Count, &cfg.Count)
	s.setInt("interval-seconds", fc.IntervalSeconds, &cfg.IntervalSeconds)

	if err := s.setDuration("interval", fc.Interval, &cfg.Interval); err != nil {
		return err
	}
	if err := s.setDuration("acquire-timeout", fc.AcquireTimeout, &cfg.AcquireTimeout); err != nil {
		return err
	}
	if err := s.setDuration("wait-step", fc.WaitStep, &cfg.WaitStep); err != nil {
		return err
	}

	s.setBool("display", fc.Display, &cfg.Display)
	s.setBool("watch-config", fc.WatchConfig, &cfg.WatchConfig)

	return nil
}
