package main

import (
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe-doctor",
		Short: "Diagnose connectivity between debug probes and the companion server",
		Long: `probe-doctor finds the workspace root, resolves the companion server URL
the same way injected probes do, and checks that the server accepts a probe.

Run "probe-doctor check" for the full diagnostic.`,
		Version:           a.buildInfo.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate(a.buildInfo.String())

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newCheckCmd(a),
		newResolveCmd(a),
		newSendCmd(a),
		newLogsCmd(a),
		newFixTimeoutsCmd(a),
		newServeCmd(a),
	)

	return cmd
}
