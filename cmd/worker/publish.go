package main

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/spf13/cobra"
)

var publishTimeout time.Duration

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Project every view and store the snapshots in Redis and Postgres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.SnapshotsEnabled() {
			return fmt.Errorf("no snapshot store configured (set REDIS_ADDR or DB_HOST)")
		}
		svc, err := loadService()
		if err != nil {
			return err
		}

		logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, cancel := context.WithTimeout(cmd.Context(), publishTimeout)
		defer cancel()

		stores, err := bootstrap.OpenSnapshotStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer stores.Close()

		pub := service.NewPublisher(svc, stores.Store, logger)
		res, err := pub.PublishAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d diagrams (%d skipped)\n", res.Published, res.Skipped)
		return nil
	},
}

func init() {
	publishCmd.Flags().DurationVar(&publishTimeout, "timeout", 30*time.Second, "overall publish timeout")
}
