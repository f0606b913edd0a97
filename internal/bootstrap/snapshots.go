package bootstrap

import (
	"context"
	"errors"

	"github.com/GoSim-25-26J-441/c4model-api/config"
	httpapi "github.com/GoSim-25-26J-441/c4model-api/internal/api/http"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/repository"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/GoSim-25-26J-441/c4model-api/internal/storage/postgres"
)

// SnapshotStores holds the stores enabled by configuration. Reader is the
// Redis store when enabled, otherwise the Postgres archive.
type SnapshotStores struct {
	Store  service.MultiStore
	Reader service.SnapshotReader
	Checks map[string]httpapi.Pinger

	closers []func() error
}

func (s *SnapshotStores) Empty() bool {
	return len(s.Store) == 0
}

func (s *SnapshotStores) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// OpenSnapshotStores connects to Redis and Postgres when configured. The
// Postgres schema is created if missing.
func OpenSnapshotStores(ctx context.Context, cfg *config.Config) (*SnapshotStores, error) {
	s := &SnapshotStores{Checks: map[string]httpapi.Pinger{}}

	if cfg.RedisEnabled() {
		client, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		repo := repository.NewSnapshotRepository(client, cfg.Snapshot.TTL)
		s.Store = append(s.Store, repo)
		s.Checks["redis"] = repo
		s.Reader = repo
		s.closers = append(s.closers, client.Close)
	}

	if cfg.ArchiveEnabled() {
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		repo := repository.NewArchiveRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.Store = append(s.Store, repo)
		s.Checks["postgres"] = repo
		if s.Reader == nil {
			s.Reader = repo
		}
	}

	return s, nil
}
