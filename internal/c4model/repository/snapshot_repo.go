package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/redis/go-redis/v9"
)

const (
	viewSetKey       = "c4:views"    // catalog of all static views
	diagramKeyPrefix = "c4:diagram:" // projected diagram: c4:diagram:{kind}:{key}
	publishedAtKey   = "c4:published_at"
	defaultTTL       = 24 * time.Hour
)

// SnapshotRepository stores projected diagrams in Redis so that consumers
// without access to the model file can read them.
type SnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *SnapshotRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SnapshotRepository{
		client: client,
		ttl:    ttl,
	}
}

// SaveViews stores the view catalog
func (r *SnapshotRepository) SaveViews(ctx context.Context, views domain.ViewSet) error {
	data, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("failed to marshal view set: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, viewSetKey, data, r.ttl)
	pipe.Set(ctx, publishedAtKey, time.Now().UTC().Format(time.RFC3339), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save view set: %w", err)
	}
	return nil
}

// SaveDiagram stores one projected diagram
func (r *SnapshotRepository) SaveDiagram(ctx context.Context, kind domain.ViewKind, d *domain.Diagram) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal diagram: %w", err)
	}
	if err := r.client.Set(ctx, r.diagramKey(kind, d.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save diagram %s/%s: %w", kind, d.ID, err)
	}
	return nil
}

// GetViews retrieves the stored view catalog
func (r *SnapshotRepository) GetViews(ctx context.Context) (*domain.ViewSet, error) {
	data, err := r.client.Get(ctx, viewSetKey).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get view set: %w", err)
	}

	var views domain.ViewSet
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view set: %w", err)
	}
	return &views, nil
}

// GetDiagram retrieves a stored diagram
func (r *SnapshotRepository) GetDiagram(ctx context.Context, kind domain.ViewKind, key string) (*domain.Diagram, error) {
	data, err := r.client.Get(ctx, r.diagramKey(kind, key)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diagram: %w", err)
	}

	var d domain.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal diagram: %w", err)
	}
	return &d, nil
}

// PublishedAt returns when the catalog was last written
func (r *SnapshotRepository) PublishedAt(ctx context.Context) (time.Time, error) {
	s, err := r.client.Get(ctx, publishedAtKey).Result()
	if err == redis.Nil {
		return time.Time{}, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get publish time: %w", err)
	}
	return time.Parse(time.RFC3339, s)
}

// LatestViews returns the stored catalog and when it was published
func (r *SnapshotRepository) LatestViews(ctx context.Context) (*domain.ViewSet, time.Time, error) {
	views, err := r.GetViews(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	at, err := r.PublishedAt(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return views, at, nil
}

// Ping checks the Redis connection
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *SnapshotRepository) diagramKey(kind domain.ViewKind, key string) string {
	return fmt.Sprintf("%s%s:%s", diagramKeyPrefix, kind, key)
}
