// Package device implements the device handle and its drivers.
//
// A [Handle] owns one [Driver] and enforces the handle state machine:
//
//	Unopened -> Open     (successful Open)
//	Unopened -> Closed   (Close without Open)
//	Open     -> Closed   (Close)
//
// A closed handle never reopens; reconfiguration means closing the handle
// and building a new one with [New]. Close is idempotent, so callers may
// close unconditionally on every exit path.
//
// Handles are not safe for concurrent use.
//
// # Drivers
//
//   - "synthetic": paced test-pattern frames, no hardware required
//   - "heartbeat": one message unit per acquire
//   - "camera": OpenCV capture through gocv (requires the gocv build tag)
package device
