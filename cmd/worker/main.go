package main

import (
	"log"
	"os"

	"github.com/GoSim-25-26J-441/c4model-api/config"
	"github.com/GoSim-25-26J-441/c4model-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/spf13/cobra"
)

var (
	cfg           *config.Config
	workspacePath string
)

var rootCmd = &cobra.Command{
	Use:           "worker",
	Short:         "Offline tools for the C4 model workspace",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", "", "workspace file (default $WORKSPACE_PATH)")
	rootCmd.AddCommand(viewsCmd, validateCmd, diagramCmd, dotCmd, renderCmd, publishCmd, snapshotCmd)
}

func resolvedWorkspacePath() string {
	if workspacePath != "" {
		return workspacePath
	}
	return cfg.Workspace.Path
}

func loadService() (*service.DiagramService, error) {
	svc, _, err := bootstrap.LoadWorkspace(bootstrap.WorkspaceOptions{
		Path:          resolvedWorkspacePath(),
		ViewURLPrefix: cfg.Workspace.ViewURLPrefix,
	})
	return svc, err
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
