package main

import (
	"fmt"

	"github.com/MKhiriev/probe-doctor/internal/report"
	"github.com/spf13/cobra"
)

func newLogsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the last lines of the probe log",
		Args:  cobra.NoArgs,
		RunE:  a.runLogs,
	}
}

func (a *app) runLogs(cmd *cobra.Command, _ []string) error {
	lines, total, err := a.services.ProbeLogService.Tail(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.ProbeLog(a.services.ProbeLogService.Path(), lines, total))
	return nil
}
