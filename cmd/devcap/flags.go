package main

import (
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
)

// Flag names double as the keys of the changed map consulted when layering
// file and environment values.

func addCommonFlags(root *cobra.Command, o *options) {
	fs := root.PersistentFlags()
	fs.StringVar(&o.cfgPath, "config", "", "path to config file (default: $HOME/.devcap/config.toml)")
	fs.IntVar(&o.cfg.Count, "count", o.cfg.Count, "stop after this many units (0 runs until signaled)")
	fs.DurationVar(&o.cfg.WaitStep, "wait-step", o.cfg.WaitStep, "granularity of shutdown checks while waiting")
	fs.StringVar(&o.cfg.LogLevel, "log-level", o.cfg.LogLevel, "status stream level (debug, info, warn, error)")
	fs.StringVar(&o.cfg.LogFormat, "log-format", o.cfg.LogFormat, "status stream format (console or json)")
	fs.BoolVar(&o.cfg.WatchConfig, "watch-config", o.cfg.WatchConfig, "reopen the device when the config file changes")
}

func addDeviceFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.cfg.Driver, "driver", o.cfg.Driver, "device driver (camera, heartbeat, synthetic)")
	fs.StringVar(&o.cfg.Resolution, "resolution", o.cfg.Resolution, "sensor resolution (HD2K, HD1080, HD720, VGA)")
	fs.IntVar(&o.cfg.FrameRate, "frame-rate", o.cfg.FrameRate, "frames per second requested at open")
	fs.StringVar(&o.cfg.SettingsPath, "settings-path", o.cfg.SettingsPath, "device calibration settings directory (empty skips the check)")
	fs.StringVar(&o.cfg.DepthMode, "depth-mode", o.cfg.DepthMode, "depth mode (NONE, PERFORMANCE, QUALITY, ULTRA, NEURAL)")
	fs.IntVar(&o.cfg.Device, "device", o.cfg.Device, "capture device index for the camera driver")
	fs.StringVar(&o.cfg.Message, "message", o.cfg.Message, "payload for the heartbeat driver")
}

func addCaptureFlags(fs *pflag.FlagSet, o *options) {
	addDeviceFlags(fs, o)
	fs.DurationVar(&o.cfg.Interval, "interval", o.cfg.Interval, "wait between acquisitions (0 lets the device pace)")
	fs.DurationVar(&o.cfg.AcquireTimeout, "acquire-timeout", o.cfg.AcquireTimeout, "per-acquisition timeout enforced by the driver (0 waits)")
	fs.BoolVar(&o.cfg.Display, "display", o.cfg.Display, "show units in a window; press q to stop")
}

func addHeartbeatFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.cfg.Message, "message", o.cfg.Message, "message printed on every beat")
	fs.IntVar(&o.cfg.IntervalSeconds, "interval-seconds", o.cfg.IntervalSeconds, "seconds between beats")
}

// changedFlags returns the names of flags set on the command line.
func changedFlags(cmd *cobra.Command) map[string]bool {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}
