package app

import (
	"time"

	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
)

// LoopConfig contains configuration for the acquisition loop.
type LoopConfig struct {
	// Interval is the pause between iterations. Zero lets the driver pace
	// acquisition (a camera blocks until its next frame).
	Interval time.Duration

	// Step bounds how long the loop sleeps before re-checking for a stop.
	// Zero means DefaultStep.
	Step time.Duration

	// MaxUnits stops the loop with ExitCompleted after that many units.
	// Zero runs until stopped.
	MaxUnits uint64

	Policy domain.AcquirePolicy
}

// DefaultLoopConfig returns a loop that runs until stopped.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{Step: DefaultStep}
}

// Loop repeatedly acquires one unit from a device and hands it to a sink.
// A loop serves exactly one open session; it is not reusable.
type Loop struct {
	config    LoopConfig
	device    ports.Device
	sink      ports.Sink
	shutdown  ports.ShutdownObserver
	reload    ports.ShutdownObserver
	logger    ports.Logger
	lifecycle *Lifecycle
	waiter    waiter
	backoff   *backoff
	session   string
	count     uint64
	err       error
}

// newLoop wires a loop for one session. reload may be nil.
func newLoop(
	config LoopConfig,
	device ports.Device,
	sink ports.Sink,
	shutdown, reload ports.ShutdownObserver,
	logger ports.Logger,
	emitter EventEmitter,
	sleep func(time.Duration),
	session string,
) *Loop {
	if config.Step <= 0 {
		config.Step = DefaultStep
	}
	return &Loop{
		config:    config,
		device:    device,
		sink:      sink,
		shutdown:  shutdown,
		reload:    reload,
		logger:    logger,
		lifecycle: NewLifecycle(logger, emitter),
		waiter:    waiter{step: config.Step, sleep: sleep, stop: stopAny(shutdown, reload)},
		backoff:   newBackoff(DefaultBackoffInitial, DefaultBackoffMax),
		session:   session,
	}
}

// Count returns the number of units acquired so far.
func (l *Loop) Count() uint64 {
	return l.count
}

// Err returns the fatal acquire error that stopped the loop, if any.
func (l *Loop) Err() error {
	return l.err
}

// Run executes the acquisition loop until the unit budget is spent, a stop
// is requested, or the device fails fatally.
func (l *Loop) Run() domain.ExitStatus {
	for {
		if status, ok := l.stopRequested(); ok {
			return status
		}

		unit, err := l.device.Acquire(l.config.Policy)
		if err != nil {
			if domain.IsTransient(err) {
				l.logger.Warn("unit skipped", ports.Err(err))
				l.waiter.wait(l.backoff.Next())
				continue
			}
			l.err = err
			l.logger.Error("acquisition failed", ports.Err(err), ports.Uint64("units", l.count))
			_ = l.lifecycle.TransitionTo(StateStopped, "fatal acquire error")
			return domain.ExitAcquireFatal
		}
		l.backoff.Reset()

		l.count++
		unit.Seq = l.count
		unit.Session = l.session
		if err := l.sink.Consume(unit); err != nil {
			l.logger.Warn("sink rejected unit", ports.Err(err), ports.Uint64("seq", unit.Seq))
		}

		if l.config.MaxUnits > 0 && l.count >= l.config.MaxUnits {
			_ = l.lifecycle.TransitionTo(StateStopped, "unit budget reached")
			return domain.ExitCompleted
		}

		l.waiter.wait(l.config.Interval)
	}
}

// stopRequested drains and stops the loop when shutdown or reload has been
// requested. Shutdown takes precedence.
func (l *Loop) stopRequested() (domain.ExitStatus, bool) {
	var (
		status domain.ExitStatus
		reason string
	)
	switch {
	case l.shutdown != nil && l.shutdown.Requested():
		status, reason = domain.ExitShutdownRequested, "shutdown requested"
		l.logger.Info("received shutdown", ports.Uint64("units", l.count))
	case l.reload != nil && l.reload.Requested():
		status, reason = domain.ExitReloadRequested, "reload requested"
		l.logger.Info("received reload", ports.Uint64("units", l.count))
	default:
		return 0, false
	}

	_ = l.lifecycle.TransitionTo(StateDraining, reason)
	_ = l.lifecycle.TransitionTo(StateStopped, reason)
	return status, true
}
