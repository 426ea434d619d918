package main

import (
	"fmt"

	"github.com/MKhiriev/probe-doctor/internal/patcher"
	"github.com/spf13/cobra"
)

func newFixTimeoutsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-timeouts <file>",
		Short: "Raise probe timeouts in a source file",
		Long: `fix-timeouts rewrites every timeout=<from> keyword argument in the file to
timeout=<to>. Probes generated with a one second timeout often give up before
a busy companion server answers.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runFixTimeouts,
	}
	cmd.Flags().String("from", patcher.DefaultFrom, "timeout value to replace")
	cmd.Flags().String("to", patcher.DefaultTo, "new timeout value")
	return cmd
}

func (a *app) runFixTimeouts(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	n, err := a.services.PatchService.FixTimeouts(cmd.Context(), args[0], from, to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if n == 0 {
		fmt.Fprintf(out, "No timeout=%s found in %s\n", from, args[0])
		return nil
	}
	fmt.Fprintf(out, "Replaced %d timeout(s) %s -> %s in %s\n", n, from, to, args[0])
	return nil
}
