package domain

import (
	"fmt"
	"strings"
)

// Resolution is the sensor output resolution requested at open time.
type Resolution string

const (
	ResolutionHD2K   Resolution = "HD2K"
	ResolutionHD1080 Resolution = "HD1080"
	ResolutionHD720  Resolution = "HD720"
	ResolutionVGA    Resolution = "VGA"
)

var resolutionSizes = map[Resolution][2]int{
	ResolutionHD2K:   {2208, 1242},
	ResolutionHD1080: {1920, 1080},
	ResolutionHD720:  {1280, 720},
	ResolutionVGA:    {672, 376},
}

// ParseResolution parses a resolution name, case-insensitively.
func ParseResolution(s string) (Resolution, error) {
	r := Resolution(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := resolutionSizes[r]; !ok {
		return "", &ConfigError{Field: "resolution", Value: s, Reason: "want one of HD2K, HD1080, HD720, VGA"}
	}
	return r, nil
}

// Size returns the frame width and height for r.
func (r Resolution) Size() (width, height int) {
	s := resolutionSizes[r]
	return s[0], s[1]
}

// DepthMode selects the depth computation performed by the device.
type DepthMode string

const (
	DepthNone        DepthMode = "NONE"
	DepthPerformance DepthMode = "PERFORMANCE"
	DepthQuality     DepthMode = "QUALITY"
	DepthUltra       DepthMode = "ULTRA"
	DepthNeural      DepthMode = "NEURAL"
)

// ParseDepthMode parses a depth mode name, case-insensitively.
func ParseDepthMode(s string) (DepthMode, error) {
	d := DepthMode(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DepthNone, DepthPerformance, DepthQuality, DepthUltra, DepthNeural:
		return d, nil
	}
	return "", &ConfigError{Field: "depth-mode", Value: s, Reason: "want one of NONE, PERFORMANCE, QUALITY, ULTRA, NEURAL"}
}

// DeviceConfig holds the options a device handle is opened with.
// Once a handle is open its configuration is frozen; changing any field
// requires closing the handle and opening a fresh one.
type DeviceConfig struct {
	Resolution   Resolution
	FrameRate    int
	SettingsPath string
	DepthMode    DepthMode

	// DeviceIndex selects the capture device for the camera driver.
	DeviceIndex int

	// Message is the payload of every unit produced by the heartbeat driver.
	Message string
}

// DefaultDeviceConfig returns the configuration the capture command starts from.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		Resolution:   ResolutionHD720,
		FrameRate:    30,
		SettingsPath: "/usr/local/zed/settings",
		DepthMode:    DepthNone,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c DeviceConfig) Validate() error {
	if _, ok := resolutionSizes[c.Resolution]; !ok {
		return &ConfigError{Field: "resolution", Value: string(c.Resolution), Reason: "unknown resolution"}
	}
	if _, err := ParseDepthMode(string(c.DepthMode)); err != nil {
		return err
	}
	if c.FrameRate <= 0 {
		return &ConfigError{Field: "frame-rate", Value: fmt.Sprint(c.FrameRate), Reason: "must be positive"}
	}
	if c.DeviceIndex < 0 {
		return &ConfigError{Field: "device", Value: fmt.Sprint(c.DeviceIndex), Reason: "must not be negative"}
	}
	return nil
}
