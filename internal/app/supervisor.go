package app

import (
	"sync/atomic"

	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
)

// Plan is everything one session is opened with.
type Plan struct {
	Driver string
	Device domain.DeviceConfig
	Loop   LoopConfig
}

// ReloadFlag is a resettable request to reopen the device with fresh
// configuration. Unlike the shutdown flag it is cleared after each reload.
type ReloadFlag struct {
	requested atomic.Bool
}

// Request asks the running session to end so it can be reopened.
func (f *ReloadFlag) Request() { f.requested.Store(true) }

// Requested reports whether a reload is pending.
func (f *ReloadFlag) Requested() bool { return f.requested.Load() }

func (f *ReloadFlag) clear() { f.requested.Store(false) }

// Supervisor runs sessions back to back. A session ends for good unless it
// stopped for a reload, in which case configuration is reloaded and a new
// device handle is opened. A closed handle is never reused.
type Supervisor struct {
	load      func() (Plan, error)
	newDevice func(kind string) (ports.Device, error)
	reload    *ReloadFlag
	logger    ports.Logger
	opts      []Option
}

// NewSupervisor creates a supervisor. load is called on every reload;
// newDevice builds an unopened handle for a driver kind.
func NewSupervisor(
	load func() (Plan, error),
	newDevice func(kind string) (ports.Device, error),
	reload *ReloadFlag,
	logger ports.Logger,
	opts ...Option,
) *Supervisor {
	if reload == nil {
		reload = &ReloadFlag{}
	}
	return &Supervisor{
		load:      load,
		newDevice: newDevice,
		reload:    reload,
		logger:    logger,
		opts:      opts,
	}
}

// Run opens sessions starting from plan until one ends with a status other
// than ExitReloadRequested. Shutdown takes precedence over a pending reload.
func (s *Supervisor) Run(plan Plan, sink ports.Sink, shutdown ports.ShutdownObserver) Result {
	var total uint64
	for {
		dev, err := s.newDevice(plan.Driver)
		if err != nil {
			s.logger.Error("create device", ports.Err(err), ports.String("driver", plan.Driver))
			return Result{Status: domain.ExitOpenFailed, Units: total, Err: err}
		}

		opts := append([]Option{WithReload(s.reload)}, s.opts...)
		res := NewManager(dev, plan.Loop, s.logger, opts...).Run(plan.Device, sink, shutdown)
		total += res.Units
		res.Units = total

		if res.Status != domain.ExitReloadRequested {
			return res
		}
		if shutdown.Requested() {
			res.Status = domain.ExitShutdownRequested
			return res
		}

		s.reload.clear()
		next, err := s.load()
		if err != nil {
			s.logger.Warn("reload rejected, keeping previous configuration", ports.Err(err))
		} else {
			plan = next
		}
		s.logger.Info("reopening device",
			ports.String("driver", plan.Driver),
			ports.Duration("interval", plan.Loop.Interval),
		)
	}
}
