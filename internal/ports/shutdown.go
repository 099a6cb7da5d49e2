package ports

// ShutdownObserver reports whether a cooperative stop has been requested.
// Requested is polled between acquisition steps and must be cheap.
type ShutdownObserver interface {
	Requested() bool
}
