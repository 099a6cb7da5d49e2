package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
)

// Result describes how a session ended.
type Result struct {
	Status  domain.ExitStatus
	Units   uint64
	Session string
	Err     error
}

// Option configures a Manager.
type Option func(*Manager)

// WithEmitter reports loop state changes to e.
func WithEmitter(e EventEmitter) Option {
	return func(m *Manager) { m.emitter = e }
}

// WithReload ends the session with ExitReloadRequested once obs reports true.
func WithReload(obs ports.ShutdownObserver) Option {
	return func(m *Manager) { m.reload = obs }
}

// WithSleep replaces time.Sleep in the loop's waits.
func WithSleep(sleep func(time.Duration)) Option {
	return func(m *Manager) { m.sleep = sleep }
}

// Manager exclusively owns one device for one session: it opens the
// device, runs the acquisition loop, and closes the device on every exit
// path.
type Manager struct {
	device  ports.Device
	config  LoopConfig
	logger  ports.Logger
	emitter EventEmitter
	reload  ports.ShutdownObserver
	sleep   func(time.Duration)
}

// NewManager takes ownership of device. No other component may call its
// methods afterwards.
func NewManager(device ports.Device, config LoopConfig, logger ports.Logger, opts ...Option) *Manager {
	m := &Manager{
		device: device,
		config: config,
		logger: logger,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run opens the device with cfg, runs the acquisition loop feeding sink,
// and closes the device before returning. A clean open failure leaves
// nothing to close; a panic during open still closes the device.
func (m *Manager) Run(cfg domain.DeviceConfig, sink ports.Sink, shutdown ports.ShutdownObserver) (res Result) {
	res.Session = uuid.NewString()

	var (
		loop       *Loop
		openFailed bool
	)
	defer func() {
		if r := recover(); r != nil {
			if loop == nil {
				m.logger.Error("open fault", ports.Any("panic", r), ports.String("session", res.Session))
				res.Status = domain.ExitOpenFailed
				res.Err = &domain.OpenError{Reason: "driver fault", Err: fmt.Errorf("%v", r)}
			} else {
				m.logger.Error("acquisition loop fault", ports.Any("panic", r), ports.String("session", res.Session))
				res.Status = domain.ExitAcquireFatal
				res.Err = fmt.Errorf("acquisition loop fault: %v", r)
			}
		}
		if openFailed {
			return
		}
		if loop != nil {
			res.Units = loop.Count()
		}

		if err := m.device.Close(); err != nil {
			m.logger.Warn("close failed", ports.Err(err), ports.String("session", res.Session))
		}
		m.logger.Info("device closed",
			ports.String("session", res.Session),
			ports.String("reason", res.Status.String()),
			ports.Uint64("units", res.Units),
		)
	}()

	if err := m.device.Open(cfg); err != nil {
		m.logger.Error("open failed", ports.Err(err), ports.String("session", res.Session))
		openFailed = true
		res.Status = domain.ExitOpenFailed
		res.Err = err
		return res
	}

	fields := []ports.Field{
		ports.String("session", res.Session),
		ports.String("resolution", string(cfg.Resolution)),
		ports.Int("frame_rate", cfg.FrameRate),
		ports.String("depth_mode", string(cfg.DepthMode)),
	}
	if d, ok := m.device.(ports.Describer); ok {
		info := d.Info()
		fields = append(fields,
			ports.String("model", info.Model),
			ports.String("serial", info.Serial),
		)
	}
	m.logger.Info("device opened", fields...)

	loop = newLoop(m.config, m.device, sink, shutdown, m.reload, m.logger, m.emitter, m.sleep, res.Session)
	res.Status = loop.Run()
	res.Err = loop.Err()
	return res
}
