package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	logAdapter "github.com/bft-labs/devcap/internal/adapters/log"
	"github.com/bft-labs/devcap/internal/cliconfig"
)

const helpDescription = `
Open a depth camera (or a stand-in device), pull units from it in a loop,
and stream status lines to stdout until the count is reached, the device
fails, or SIGINT/SIGTERM arrives. The device is closed on every exit path.

Configure via file ($HOME/.devcap/config.toml), DEVCAP_* environment
variables, or flags; flags win.

Exit codes: 0 completed or stopped by signal, 2 bad configuration,
3 device failed to open, 4 fatal acquisition error, 1 anything else.
`

var exampleUsage = strings.TrimSpace(`
  devcap capture --resolution HD1080 --frame-rate 15 --count 100
  devcap capture --driver camera --device 0 --display
  devcap heartbeat --message ping --interval-seconds 5
  devcap probe --driver camera
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// options is shared by every subcommand; flags bind straight into cfg.
type options struct {
	cfg     cliconfig.Config
	cfgPath string
}

func newRootCmd() *cobra.Command {
	o := &options{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "devcap",
		Short:         "Capture units from a depth camera with graceful shutdown",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: exitConfig, err: err}
	})

	addCommonFlags(root, o)
	root.AddCommand(newCaptureCmd(o), newHeartbeatCmd(o), newProbeCmd(o))
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		code := exitCode(err)
		if msg := err.Error(); msg != "" {
			log, _ := logAdapter.New(logAdapter.Options{})
			log.Error().Err(err).Int("exit_code", code).Msg("devcap")
		}
		os.Exit(code)
	}
}
