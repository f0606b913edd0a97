package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupArchiveRepo(t *testing.T) (*ArchiveRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewArchiveRepository(db), mock, db
}

func TestArchiveRepository_EnsureSchema(t *testing.T) {
	repo, mock, db := setupArchiveRepo(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS c4_publications`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRepository_SaveViews(t *testing.T) {
	repo, mock, db := setupArchiveRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO c4_publications`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveViews(context.Background(), domain.ViewSet{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRepository_SaveDiagram(t *testing.T) {
	repo, mock, db := setupArchiveRepo(t)
	defer db.Close()

	t.Run("upserts by kind and key", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO c4_diagram_snapshots`).
			WithArgs("context", "SystemContext", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveDiagram(context.Background(), domain.ViewContext, &domain.Diagram{ID: "SystemContext"})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO c4_diagram_snapshots`).
			WillReturnError(errors.New("connection reset"))

		err := repo.SaveDiagram(context.Background(), domain.ViewContext, &domain.Diagram{ID: "SystemContext"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "context/SystemContext")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArchiveRepository_LatestViews(t *testing.T) {
	repo, mock, db := setupArchiveRepo(t)
	defer db.Close()

	t.Run("returns latest publication", func(t *testing.T) {
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(`SELECT views, published_at FROM c4_publications`).
			WillReturnRows(sqlmock.NewRows([]string{"views", "published_at"}).
				AddRow([]byte(`{"landscapes":[{"id":"L","name":"System Landscape","description":""}],"contexts":[],"containers":[],"components":[]}`), at))

		views, publishedAt, err := repo.LatestViews(context.Background())
		require.NoError(t, err)
		assert.Equal(t, at, publishedAt)
		require.Len(t, views.Landscapes, 1)
		assert.Equal(t, "L", views.Landscapes[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing published", func(t *testing.T) {
		mock.ExpectQuery(`SELECT views, published_at FROM c4_publications`).
			WillReturnRows(sqlmock.NewRows([]string{"views", "published_at"}))

		_, _, err := repo.LatestViews(context.Background())
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArchiveRepository_GetDiagram(t *testing.T) {
	repo, mock, db := setupArchiveRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT diagram FROM c4_diagram_snapshots`).
		WithArgs("component", "Components").
		WillReturnRows(sqlmock.NewRows([]string{"diagram"}).
			AddRow([]byte(`{"id":"Components","name":"C","title":"","elements":[],"relationships":[]}`)))

	d, err := repo.GetDiagram(context.Background(), domain.ViewComponent, "Components")
	require.NoError(t, err)
	assert.Equal(t, "Components", d.ID)

	mock.ExpectQuery(`SELECT diagram FROM c4_diagram_snapshots`).
		WithArgs("component", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetDiagram(context.Background(), domain.ViewComponent, "missing")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
