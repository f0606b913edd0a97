package service

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"go.uber.org/zap"
)

type SnapshotStore interface {
	SaveViews(ctx context.Context, views domain.ViewSet) error
	SaveDiagram(ctx context.Context, kind domain.ViewKind, d *domain.Diagram) error
}

type PublishResult struct {
	Published int `json:"published"`
	Skipped   int `json:"skipped"`
}

// Publisher writes every projectable diagram to a SnapshotStore.
type Publisher struct {
	svc   *DiagramService
	store SnapshotStore
	log   *zap.SugaredLogger
}

func NewPublisher(svc *DiagramService, store SnapshotStore, log *zap.SugaredLogger) *Publisher {
	return &Publisher{svc: svc, store: store, log: log}
}

// PublishAll projects each static view and saves it. Views that fail to
// project are logged and skipped; a store failure aborts the run.
func (p *Publisher) PublishAll(ctx context.Context) (PublishResult, error) {
	var res PublishResult

	views := p.svc.Views()
	if err := p.store.SaveViews(ctx, views); err != nil {
		return res, err
	}

	for _, kind := range domain.StaticViewKinds {
		summaries, err := p.svc.List(kind)
		if err != nil {
			return res, err
		}
		for _, v := range summaries {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			d, err := p.svc.Diagram(kind, v.ID)
			if err != nil {
				p.log.Warnw("skipping view", "kind", kind, "key", v.ID, "error", err)
				res.Skipped++
				continue
			}
			if err := p.store.SaveDiagram(ctx, kind, d); err != nil {
				return res, fmt.Errorf("publish %s/%s: %w", kind, v.ID, err)
			}
			res.Published++
		}
	}

	p.log.Infow("snapshots published", "published", res.Published, "skipped", res.Skipped)
	return res, nil
}
