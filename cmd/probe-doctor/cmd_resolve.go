package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the workspace root and the resolved server URL",
		Args:  cobra.NoArgs,
		RunE:  a.runResolve,
	}
	cmd.Flags().Bool("url-only", false, "print only the URL")
	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, _ []string) error {
	res, err := a.services.DiagnosticService.Resolve(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if urlOnly, _ := cmd.Flags().GetBool("url-only"); urlOnly {
		fmt.Fprintln(out, res.URL)
		return nil
	}

	fmt.Fprintf(out, "Workspace root: %s\n", res.Root)
	fmt.Fprintf(out, "Source:         %s\n", res.Source)
	fmt.Fprintf(out, "Server URL:     %s\n", res.URL)
	return nil
}
