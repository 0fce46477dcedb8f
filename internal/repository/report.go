package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/trend"
)

const (
	trendCachePattern = "trend:*"

	reportColumns = `
		id,
		author,
		text,
		original_text,
		keyword,
		url,
		created_at,
		location,
		latitude,
		longitude,
		score,
		category,
		posted_at,
		ingested_at`
)

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create сохраняет пост. Возвращает false, если пост с таким URL уже есть.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) (bool, error) {
	query := `
		INSERT INTO reports (author, text, original_text, keyword, url, created_at,
			location, latitude, longitude, score, category, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (url) DO NOTHING
		RETURNING id, ingested_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Author,
		report.Text,
		report.OriginalText,
		report.Keyword,
		report.URL,
		report.CreatedAt,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.Score,
		string(report.Category),
		report.PostedAt,
	).Scan(&report.ID, &report.IngestedAt)
	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строк
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create report: %w", err)
	}
	return true, nil
}

// ListReports возвращает список постов с пагинацией, новые сначала
func (r *ReportRepository) ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	// рассчитываем смещение
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT ` + reportColumns + `
		FROM reports
		WHERE ($1 = '' OR category = $1)
		ORDER BY posted_at DESC NULLS LAST, ingested_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, string(filter.Category), filter.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return collectReports(rows, "ListReports")
}

// ListByKeyword возвращает посты, собранные по поисковому слову
func (r *ReportRepository) ListByKeyword(ctx context.Context, keyword string) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + `
		FROM reports
		WHERE keyword = $1
		ORDER BY posted_at DESC NULLS LAST, ingested_at DESC;
	`
	rows, err := r.db.Query(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by keyword: %w", err)
	}
	return collectReports(rows, "ListByKeyword")
}

// ListWithLocation возвращает посты с координатами, пустая категория - без фильтра
func (r *ReportRepository) ListWithLocation(ctx context.Context, category classifier.Category) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + `
		FROM reports
		WHERE
			latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND ($1 = '' OR category = $1);
	`
	rows, err := r.db.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports with location: %w", err)
	}
	return collectReports(rows, "ListWithLocation")
}

// ListSince возвращает посты не старше since. Посты с нераспознанным временем
// отбираются по времени сохранения, чтобы старые записи не попадали в каждый тренд.
func (r *ReportRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + `
		FROM reports
		WHERE posted_at >= $1
			OR (posted_at IS NULL AND ingested_at >= $1);
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports since %s: %w", since, err)
	}
	return collectReports(rows, "ListSince")
}

// DeleteZeroScore удаляет посты с нулевой оценкой
func (r *ReportRepository) DeleteZeroScore(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE score = 0;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete zero score reports: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountStats считает посты по наличию оценки
func (r *ReportRepository) CountStats(ctx context.Context) (*models.ReportStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(score),
			COUNT(*) FILTER (WHERE score IS NULL),
			COUNT(*) FILTER (WHERE score = 0)
		FROM reports;
	`
	stats := &models.ReportStats{}
	err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Scored, &stats.Unscored, &stats.ZeroScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stats, nil
		}
		return nil, fmt.Errorf("failed to count report stats: %w", err)
	}
	return stats, nil
}

// GetTrendFromCache пытается получить тренд из Redis, nil при промахе
func (r *ReportRepository) GetTrendFromCache(ctx context.Context, key string) (*trend.Trend, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trend from cache: %w", err)
	}

	t := &trend.Trend{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trend from cache: %w", err)
	}
	return t, nil
}

// SetTrendCache сохраняет тренд в Redis
func (r *ReportRepository) SetTrendCache(ctx context.Context, key string, t *trend.Trend, ttl time.Duration) error {
	val, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trend for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set trend in cache: %w", err)
	}
	return nil
}

// InvalidateTrendCache удаляет все закешированные тренды
func (r *ReportRepository) InvalidateTrendCache(ctx context.Context) error {
	var keys []string
	iter := r.redisClient.Scan(ctx, 0, trendCachePattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan trend cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate trend cache: %w", err)
	}
	return nil
}

func collectReports(rows pgx.Rows, method string) ([]*models.Report, error) {
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		var category string
		err := rows.Scan(
			&report.ID,
			&report.Author,
			&report.Text,
			&report.OriginalText,
			&report.Keyword,
			&report.URL,
			&report.CreatedAt,
			&report.Location,
			&report.Latitude,
			&report.Longitude,
			&report.Score,
			&category,
			&report.PostedAt,
			&report.IngestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row in %s: %w", method, err)
		}
		report.Category = classifier.Category(category)
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return reports, nil
}
