package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/devcap/internal/app"
	"github.com/bft-labs/devcap/internal/cliconfig"
)

func newCaptureCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Open the device and acquire units until done or signaled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, o, (*cliconfig.Config).CapturePlan)
		},
	}
	addCaptureFlags(cmd.Flags(), o)
	return cmd
}

func newHeartbeatCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Print a message on a fixed interval until signaled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, o, (*cliconfig.Config).HeartbeatPlan)
		},
	}
	addHeartbeatFlags(cmd.Flags(), o)
	return cmd
}

func newProbeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Open the device, print what it reports, and close it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd, o)
		},
	}
	addDeviceFlags(cmd.Flags(), o)
	return cmd
}

// planBuilder validates a resolved config and turns it into a session plan.
type planBuilder func(*cliconfig.Config) (app.Plan, error)
