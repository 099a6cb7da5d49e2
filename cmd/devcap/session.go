package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	logAdapter "github.com/bft-labs/devcap/internal/adapters/log"
	"github.com/bft-labs/devcap/internal/app"
	"github.com/bft-labs/devcap/internal/cliconfig"
	"github.com/bft-labs/devcap/internal/device"
	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
	"github.com/bft-labs/devcap/internal/shutdown"
	"github.com/bft-labs/devcap/internal/sink"
	"github.com/bft-labs/devcap/internal/watch"
)

// resolved is the outcome of layering file, env and flags for one command.
type resolved struct {
	cfg     cliconfig.Config
	path    string
	changed map[string]bool
}

func resolve(cmd *cobra.Command, o *options) (resolved, error) {
	path := o.cfgPath
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}
	changed := changedFlags(cmd)
	cfg, err := cliconfig.Resolve(o.cfg, path, changed)
	if err != nil {
		return resolved{}, err
	}
	return resolved{cfg: cfg, path: path, changed: changed}, nil
}

func newLogger(cfg cliconfig.Config, cmd *cobra.Command) (zerolog.Logger, error) {
	zl, err := logAdapter.New(logAdapter.Options{
		Out:    cmd.OutOrStdout(),
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return zl, &domain.ConfigError{Field: "log-level", Value: cfg.LogLevel, Reason: err.Error()}
	}
	return zl, nil
}

func newDevice(kind string) (ports.Device, error) {
	h, err := device.New(kind)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// runSession runs capture sessions until the supervisor reports a final
// status, then maps it to the process exit code.
func runSession(cmd *cobra.Command, o *options, build planBuilder) error {
	r, err := resolve(cmd, o)
	if err != nil {
		return err
	}
	plan, err := build(&r.cfg)
	if err != nil {
		return err
	}

	zl, err := newLogger(r.cfg, cmd)
	if err != nil {
		return err
	}
	zl.Info().Interface("config", r.cfg).Str("config_file", r.path).Msg("configuration")
	logger := logAdapter.NewZerologAdapterWithLogger(zl)

	coord := shutdown.Listen()
	defer coord.Stop()

	reload := &app.ReloadFlag{}
	if r.cfg.WatchConfig && !cliconfig.FileExists(r.path) {
		logger.Warn("config file not found, not watching", ports.String("path", r.path))
	} else if r.cfg.WatchConfig {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		w := watch.NewConfigWatcher(r.path, watch.DefaultDebounce, reload.Request, logger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Warn("config watcher stopped", ports.Err(err))
			}
		}()
	}

	var out ports.Sink = sink.NewStatus(logger, "unit")
	if r.cfg.Display {
		win, err := sink.NewWindow("devcap", coord.Request)
		if err != nil {
			return fmt.Errorf("open display: %w", err)
		}
		defer win.Close()
		out = sink.Tee(out, win)
	}

	load := func() (app.Plan, error) {
		cfg, err := cliconfig.Resolve(o.cfg, r.path, r.changed)
		if err != nil {
			return app.Plan{}, err
		}
		return build(&cfg)
	}
	res := app.NewSupervisor(load, newDevice, reload, logger).Run(plan, out, coord)

	fields := []ports.Field{
		ports.String("reason", res.Status.String()),
		ports.Uint64("units", res.Units),
		ports.String("session", res.Session),
	}
	if sig := coord.Signal(); sig != nil {
		fields = append(fields, ports.String("signal", sig.String()))
	}
	if res.Err != nil {
		fields = append(fields, ports.Err(res.Err))
	}

	code := res.Status.Code()
	if code != domain.CodeOK {
		logger.Error("stopped", fields...)
		return &exitError{code: code}
	}
	logger.Info("stopped", fields...)
	return nil
}

// runProbe opens the device once, reports its identity, and closes it.
func runProbe(cmd *cobra.Command, o *options) error {
	r, err := resolve(cmd, o)
	if err != nil {
		return err
	}
	plan, err := r.cfg.CapturePlan()
	if err != nil {
		return err
	}
	zl, err := newLogger(r.cfg, cmd)
	if err != nil {
		return err
	}
	logger := logAdapter.NewZerologAdapterWithLogger(zl)

	h, err := device.New(plan.Driver)
	if err != nil {
		return err
	}
	if err := h.Open(plan.Device); err != nil {
		logger.Error("open failed", ports.String("driver", plan.Driver), ports.Err(err))
		return &exitError{code: domain.CodeOpenFailed}
	}
	info := h.Info()
	logger.Info("device",
		ports.String("driver", plan.Driver),
		ports.String("model", info.Model),
		ports.String("serial", info.Serial),
		ports.String("firmware", info.Firmware),
	)
	if err := h.Close(); err != nil {
		logger.Warn("close failed", ports.Err(err))
	}
	return nil
}
