// Package domain contains the core domain entities and value objects for devcap.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (drivers, signals, logging) and
// contains only the rules every other layer relies on.
//
// # Entities
//
//   - [DeviceConfig]: Options a device handle is opened with (frozen once open)
//   - [Unit]: A single acquired value (one frame, one heartbeat) in flight to a sink
//   - [ExitStatus]: Why a capture session ended, and the process exit code it maps to
//
// # Errors
//
// [ConfigError], [OpenError] and [AcquireError] form the error taxonomy.
// Transient acquire errors are recovered inside the acquisition loop; every
// other error terminates the session and becomes its exit status.
package domain
