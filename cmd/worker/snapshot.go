package main

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [kind key]",
	Short: "Print a published snapshot: the catalog, or one diagram",
	Long: `Reads back what "publish" stored, from Redis when REDIS_ADDR is set and
from the Postgres archive otherwise. Without arguments the catalog is printed
together with its publish time.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts no arguments or <kind> <key>, received %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.SnapshotsEnabled() {
			return fmt.Errorf("no snapshot store configured (set REDIS_ADDR or DB_HOST)")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		stores, err := bootstrap.OpenSnapshotStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer stores.Close()

		if len(args) == 0 {
			views, at, err := stores.Reader.LatestViews(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				PublishedAt time.Time       `json:"publishedAt"`
				Views       *domain.ViewSet `json:"views"`
			}{at.UTC(), views})
		}

		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		d, err := stores.Reader.GetDiagram(ctx, kind, args[1])
		if err != nil {
			return fmt.Errorf("%s/%s: %w", kind, args[1], err)
		}
		return writeJSON(cmd.OutOrStdout(), d)
	},
}
