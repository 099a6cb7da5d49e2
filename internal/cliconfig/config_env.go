package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (DEVCAP_*).
// The legacy HELLO_MESSAGE, HELLO_INTERVAL and ZED_SETTINGS_PATH variables
// are honored when the DEVCAP_ equivalent is unset.
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("driver", os.Getenv("DEVCAP_DRIVER"), &cfg.Driver)
	s.setString("resolution", os.Getenv("DEVCAP_RESOLUTION"), &cfg.Resolution)
	s.setString("settings-path", envOr("DEVCAP_SETTINGS_PATH", "ZED_SETTINGS_PATH"), &cfg.SettingsPath)
	s.setString("depth-mode", os.Getenv("DEVCAP_DEPTH_MODE"), &cfg.DepthMode)
	s.setString("message", envOr("DEVCAP_MESSAGE", "HELLO_MESSAGE"), &cfg.Message)
	s.setString("log-level", os.Getenv("DEVCAP_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("DEVCAP_LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setIntFromString("frame-rate", os.Getenv("DEVCAP_FRAME_RATE"), &cfg.FrameRate); err != nil {
		return err
	}
	if err := s.setIntFromString("device", os.Getenv("DEVCAP_DEVICE"), &cfg.Device); err != nil {
		return err
	}
	if err := s.setIntFromString("count", os.Getenv("DEVCAP_COUNT"), &cfg.Count); err != nil {
		return err
	}
	if err := s.setIntFromString("interval-seconds", envOr("DEVCAP_INTERVAL_SECONDS", "HELLO_INTERVAL"), &cfg.IntervalSeconds); err != nil {
		return err
	}

	if err := s.setDuration("interval", os.Getenv("DEVCAP_INTERVAL"), &cfg.Interval); err != nil {
		return err
	}
	if err := s.setDuration("acquire-timeout", os.Getenv("DEVCAP_ACQUIRE_TIMEOUT"), &cfg.AcquireTimeout); err != nil {
		return err
	}
	if err := s.setDuration("wait-step", os.Getenv("DEVCAP_WAIT_STEP"), &cfg.WaitStep); err != nil {
		return err
	}

	if err := s.setBoolFromString("display", os.Getenv("DEVCAP_DISPLAY"), &cfg.Display); err != nil {
		return err
	}
	if err := s.setBoolFromString("watch-config", os.Getenv("DEVCAP_WATCH_CONFIG"), &cfg.WatchConfig); err != nil {
		return err
	}

	return nil
}

// envOr returns the first non-empty environment variable among keys.
func envOr(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
