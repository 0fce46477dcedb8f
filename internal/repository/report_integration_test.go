//go:build integration

package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres поднимает Postgres, применяет миграции и возвращает пул
func startPostgres(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("disasters"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("pass"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestReportRepository_ListSince(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pool := startPostgres(ctx, t)
	repo := NewReportRepository(pool, nil)

	now := time.Now().UTC()
	recent := now.Add(-time.Hour)
	old := now.Add(-72 * time.Hour)
	reports := []*models.Report{
		{Text: "recent flood", URL: "https://example.com/recent", CreatedAt: recent.Format(time.RFC3339), PostedAt: &recent, Category: classifier.Flood},
		{Text: "old flood", URL: "https://example.com/old", CreatedAt: old.Format(time.RFC3339), PostedAt: &old, Category: classifier.Flood},
		{Text: "fresh garbage time", URL: "https://example.com/fresh-bad", CreatedAt: "yesterday", Category: classifier.Disaster},
		{Text: "stale garbage time", URL: "https://example.com/stale-bad", CreatedAt: "last week", Category: classifier.Disaster},
	}
	for _, r := range reports {
		created, err := repo.Create(ctx, r)
		require.NoError(t, err)
		require.True(t, created)
	}
	_, err := pool.Exec(ctx, `UPDATE reports SET ingested_at = $1 WHERE url = $2`, old, "https://example.com/stale-bad")
	require.NoError(t, err)

	got, err := repo.ListSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)

	urls := make([]string, len(got))
	for i, r := range got {
		urls[i] = r.URL
	}
	assert.ElementsMatch(t, []string{"https://example.com/recent", "https://example.com/fresh-bad"}, urls)
}

func TestReportRepository_CreateDuplicate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	repo := NewReportRepository(startPostgres(ctx, t), nil)
	report := &models.Report{Text: "quake", URL: "https://example.com/quake", Category: classifier.Earthquake}

	created, err := repo.Create(ctx, report)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, report.ID)

	created, err = repo.Create(ctx, &models.Report{Text: "quake again", URL: "https://example.com/quake", Category: classifier.Earthquake})
	require.NoError(t, err)
	assert.False(t, created)
}
