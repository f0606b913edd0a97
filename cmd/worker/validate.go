package main

import (
	"fmt"

	"github.com/GoSim-25-26J-441/c4model-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report view references that do not resolve",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ws, err := bootstrap.LoadWorkspace(bootstrap.WorkspaceOptions{Path: resolvedWorkspacePath()})
		if err != nil {
			return err
		}

		problems := validator.CheckReferences(ws)
		for _, p := range problems {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d unresolved view references", len(problems))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: all view references resolve\n", ws.Name)
		return nil
	},
}
