package domain

import "time"

// Unit is one value produced by a single acquire call, typically a frame.
// Ownership passes to the sink for the duration of one Consume call; the
// acquisition loop never keeps a reference afterwards.
type Unit struct {
	// Seq is the iteration counter value assigned by the acquisition loop.
	Seq uint64

	// Session identifies the open/close cycle the unit was acquired in.
	Session string

	CapturedAt time.Time

	Width  int
	Height int

	// Data is the raw payload. It may alias a driver buffer that is reused
	// by the next acquire, so sinks must not retain it.
	Data []byte

	// Meta carries driver-specific attributes (message text, exposure, ...).
	Meta map[string]string
}

// AcquirePolicy bounds a single acquire call.
type AcquirePolicy struct {
	// Timeout is the longest a driver may wait for a unit before reporting
	// a transient error. Zero leaves the bound to the driver.
	Timeout time.Duration
}

// DeviceInfo describes an opened device.
type DeviceInfo struct {
	Model    string
	Serial   string
	Firmware string
}
