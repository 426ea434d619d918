package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/report"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve the server URL and test that it accepts a probe",
		Long: `check prints the tail of the probe log, resolves the companion server URL,
opens a TCP connection to it and POSTs a test probe. It exits with status 1
when the server cannot be reached or rejects the probe.`,
		Args: cobra.NoArgs,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	lines, total, err := a.services.ProbeLogService.Tail(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(out, report.ProbeLog(a.services.ProbeLogService.Path(), lines, total))
	case errors.Is(err, logger.ErrProbeLogNotFound):
		fmt.Fprintf(out, "Probe log %s not found, probes have not run yet\n\n", a.services.ProbeLogService.Path())
	default:
		a.log.Warn().Err(err).Msg("cannot read probe log")
	}

	check, err := a.services.DiagnosticService.Check(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, report.Render(check))
	return check.Result.Err()
}
