package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Send one probe the way injected probe code does",
		Long: `send POSTs a single probe payload without the TCP pre-check and appends
EXECUTING, SUCCESS or ERROR lines to the probe log.`,
		Args: cobra.NoArgs,
		RunE: a.runSend,
	}
}

func (a *app) runSend(cmd *cobra.Command, _ []string) error {
	check, err := a.services.DiagnosticService.Send(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if check.Result.OK() {
		fmt.Fprintf(out, "SUCCESS: %s (%s)\n", check.Result, check.URL)
		return nil
	}

	fmt.Fprintf(out, "ERROR: %s (%s)\n", check.Result, check.URL)
	fmt.Fprintf(out, "See %s for details\n", check.ProbeLogPath)
	return check.Result.Err()
}
