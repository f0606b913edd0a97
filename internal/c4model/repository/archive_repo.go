package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/google/uuid"
)

// ArchiveSchema creates the tables used by ArchiveRepository.
const ArchiveSchema = `
CREATE TABLE IF NOT EXISTS c4_publications (
	id           UUID PRIMARY KEY,
	views        JSONB NOT NULL,
	published_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS c4_diagram_snapshots (
	kind         TEXT NOT NULL,
	view_key     TEXT NOT NULL,
	diagram      JSONB NOT NULL,
	published_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (kind, view_key)
);
`

// ArchiveRepository keeps published diagrams in PostgreSQL. Every catalog
// publish is recorded; diagrams hold the latest projection per view.
type ArchiveRepository struct {
	db *sql.DB
}

// NewArchiveRepository creates a new ArchiveRepository
func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, ArchiveSchema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}
	return nil
}

// SaveViews records a publication of the view catalog
func (r *ArchiveRepository) SaveViews(ctx context.Context, views domain.ViewSet) error {
	data, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("failed to marshal view set: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO c4_publications (id, views) VALUES ($1, $2)`,
		uuid.New().String(), data,
	)
	if err != nil {
		return fmt.Errorf("failed to archive view set: %w", err)
	}
	return nil
}

// SaveDiagram upserts the diagram for its view
func (r *ArchiveRepository) SaveDiagram(ctx context.Context, kind domain.ViewKind, d *domain.Diagram) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal diagram: %w", err)
	}

	query := `
		INSERT INTO c4_diagram_snapshots (kind, view_key, diagram)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind, view_key) DO UPDATE SET
			diagram = EXCLUDED.diagram,
			published_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, string(kind), d.ID, data); err != nil {
		return fmt.Errorf("failed to archive diagram %s/%s: %w", kind, d.ID, err)
	}
	return nil
}

// LatestViews returns the most recently published catalog and its time
func (r *ArchiveRepository) LatestViews(ctx context.Context) (*domain.ViewSet, time.Time, error) {
	var (
		data []byte
		at   time.Time
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT views, published_at FROM c4_publications ORDER BY published_at DESC LIMIT 1`,
	).Scan(&data, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get view set: %w", err)
	}

	var views domain.ViewSet
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to unmarshal view set: %w", err)
	}
	return &views, at, nil
}

// GetDiagram retrieves an archived diagram
func (r *ArchiveRepository) GetDiagram(ctx context.Context, kind domain.ViewKind, key string) (*domain.Diagram, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT diagram FROM c4_diagram_snapshots WHERE kind = $1 AND view_key = $2`,
		string(kind), key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
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

// Ping checks the database connection
func (r *ArchiveRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
