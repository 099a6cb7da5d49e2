package domain

// ExitStatus is the reason a capture session ended.
type ExitStatus int

const (
	ExitCompleted ExitStatus = iota
	ExitShutdownRequested
	ExitAcquireFatal
	ExitOpenFailed

	// ExitReloadRequested ends a session so it can be reopened with fresh
	// configuration. It never becomes a process exit status.
	ExitReloadRequested
)

// Process exit codes.
const (
	CodeOK           = 0
	CodeFailure      = 1
	CodeConfigError  = 2
	CodeOpenFailed   = 3
	CodeAcquireFatal = 4
)

// String returns a human-readable representation of the status.
func (s ExitStatus) String() string {
	switch s {
	case ExitCompleted:
		return "Completed"
	case ExitShutdownRequested:
		return "ShutdownRequested"
	case ExitAcquireFatal:
		return "AcquireFatal"
	case ExitOpenFailed:
		return "OpenFailed"
	case ExitReloadRequested:
		return "ReloadRequested"
	default:
		return "Unknown"
	}
}

// Code maps the status to the process exit code a supervisor sees.
func (s ExitStatus) Code() int {
	switch s {
	case ExitCompleted, ExitShutdownRequested:
		return CodeOK
	case ExitOpenFailed:
		return CodeOpenFailed
	case ExitAcquireFatal:
		return CodeAcquireFatal
	default:
		return CodeFailure
	}
}
