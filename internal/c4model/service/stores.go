package service

import (
	"context"
	"errors"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
)

// MultiStore writes every snapshot to each of its stores in order. All
// stores are attempted; their errors are joined.
type MultiStore []SnapshotStore

func (m MultiStore) SaveViews(ctx context.Context, views domain.ViewSet) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.SaveViews(ctx, views))
	}
	return errors.Join(errs...)
}

func (m MultiStore) SaveDiagram(ctx context.Context, kind domain.ViewKind, d *domain.Diagram) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.SaveDiagram(ctx, kind, d))
	}
	return errors.Join(errs...)
}

// SnapshotReader reads back what a Publisher stored.
type SnapshotReader interface {
	LatestViews(ctx context.Context) (*domain.ViewSet, time.Time, error)
	GetDiagram(ctx context.Context, kind domain.ViewKind, key string) (*domain.Diagram, error)
}
