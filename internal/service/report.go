package service

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/observability"
	"github.com/shenikar/disaster_dashboard/internal/trend"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AllCategories - значение фильтра, которое фронтенд передает для "без фильтра"
const AllCategories = "All Disasters"

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReportRepository определяет контракт для работы с бд постов
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) (bool, error)
	ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error)
	ListByKeyword(ctx context.Context, keyword string) ([]*models.Report, error)
	ListWithLocation(ctx context.Context, category classifier.Category) ([]*models.Report, error)
	ListSince(ctx context.Context, since time.Time) ([]*models.Report, error)
	DeleteZeroScore(ctx context.Context) (int64, error)
	CountStats(ctx context.Context) (*models.ReportStats, error)
	GetTrendFromCache(ctx context.Context, key string) (*trend.Trend, error)
	SetTrendCache(ctx context.Context, key string, t *trend.Trend, ttl time.Duration) error
	InvalidateTrendCache(ctx context.Context) error
}

// ReportService определяет контракт бизнес-логики дашборда
type ReportService interface {
	AddReport(ctx context.Context, report *models.Report) (bool, error)
	ListReports(ctx context.Context, category string, page, pageSize int) ([]*models.Report, error)
	ListByKeyword(ctx context.Context, keyword string) ([]*models.Report, error)
	ListLocations(ctx context.Context, category string) ([]*models.Report, error)
	GetTrend(ctx context.Context) (*trend.Trend, error)
	Classify(text string) classifier.Category
	Categories() []models.CategoryInfo
	Color(category classifier.Category) classifier.Color
	SetClassifier(ctx context.Context, c *classifier.Classifier)
	PurgeZeroScore(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*models.ReportStats, error)
}

type reportService struct {
	repo       ReportRepository
	logger     *logrus.Logger
	cfg        *config.Config
	publisher  webhook.WebhookPublisher
	metrics    *observability.Metrics
	clock      clockwork.Clock
	classifier atomic.Pointer[classifier.Classifier]
}

func NewReportService(
	repo ReportRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	cls *classifier.Classifier,
) ReportService {
	s := &reportService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
	}
	if cls == nil {
		cls = classifier.Default()
	}
	s.classifier.Store(cls)
	return s
}

// AddReport классифицирует и сохраняет пост. created=false, если пост с таким URL уже есть.
func (s *reportService) AddReport(ctx context.Context, report *models.Report) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "AddReport",
		"url":     report.URL,
	})
	log.Debug("Attempting to add a new report")

	report.Category = s.Classify(report.Text)
	if ts, err := trend.ParseTimestamp(report.CreatedAt); err == nil {
		ts = ts.UTC()
		report.PostedAt = &ts
	} else {
		log.WithError(err).Warn("Report timestamp is not recognized, it will be skipped in trends")
		report.PostedAt = nil
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return false, fmt.Errorf("service: could not create report: %w", err)
	}
	if !created {
		log.Info("Report with this URL already exists")
		s.metrics.ReportsDuplicate.Inc()
		return false, nil
	}
	s.metrics.ReportsIngested.WithLabelValues(string(report.Category)).Inc()

	if err := s.repo.InvalidateTrendCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate trend cache")
	}

	event := webhook.ReportEvent{
		Type:      webhook.EventReportCreated,
		ReportID:  report.ID,
		Category:  report.Category,
		Text:      report.Text,
		URL:       report.URL,
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		Timestamp: s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish report webhook event")
	}

	log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"category":  report.Category,
	}).Info("Report created successfully")
	return true, nil
}

// ListReports возвращает посты с пагинацией, новые сначала
func (s *reportService) ListReports(ctx context.Context, category string, page, pageSize int) ([]*models.Report, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	filter := models.ReportFilter{
		Category: normalizeCategory(category),
		Page:     page,
		PageSize: pageSize,
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"category":  filter.Category,
		"page":      page,
		"page_size": pageSize,
	})
	log.Debug("Listing reports")

	reports, err := s.repo.ListReports(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Debug("Reports listed successfully")
	return reports, nil
}

// ListByKeyword возвращает посты, собранные по поисковому слову
func (s *reportService) ListByKeyword(ctx context.Context, keyword string) ([]*models.Report, error) {
	keyword = strings.TrimSpace(keyword)
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListByKeyword",
		"keyword": keyword,
	})

	reports, err := s.repo.ListByKeyword(ctx, keyword)
	if err != nil {
		log.WithError(err).Error("Failed to list reports by keyword")
		return nil, fmt.Errorf("service: could not list reports by keyword: %w", err)
	}
	return reports, nil
}

// ListLocations возвращает посты с координатами для карты
func (s *reportService) ListLocations(ctx context.Context, category string) ([]*models.Report, error) {
	cat := normalizeCategory(category)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "ListLocations",
		"category": cat,
	})

	reports, err := s.repo.ListWithLocation(ctx, cat)
	if err != nil {
		log.WithError(err).Error("Failed to list report locations")
		return nil, fmt.Errorf("service: could not list report locations: %w", err)
	}
	return reports, nil
}

// GetTrend считает количество постов по категориям и корзинам за окно
func (s *reportService) GetTrend(ctx context.Context) (*trend.Trend, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetTrend",
	})

	key := s.trendCacheKey()
	if s.cfg.TrendCacheTTL > 0 {
		cached, err := s.repo.GetTrendFromCache(ctx, key)
		switch {
		case err != nil:
			s.metrics.TrendCache.WithLabelValues("error").Inc()
			log.WithError(err).Warn("Failed to get trend from cache")
		case cached != nil:
			s.metrics.TrendCache.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			s.metrics.TrendCache.WithLabelValues("miss").Inc()
		}
	}

	bucketer, err := trend.NewBucketer(
		trend.WithWindow(s.cfg.TrendWindow),
		trend.WithBucketWidth(s.cfg.TrendBucket),
		trend.WithLocation(s.cfg.TrendLocation),
		trend.WithOrder(s.classifier.Load().Categories()),
	)
	if err != nil {
		return nil, fmt.Errorf("service: invalid trend settings: %w", err)
	}

	now := s.clock.Now()
	reports, err := s.repo.ListSince(ctx, now.Add(-bucketer.Window()))
	if err != nil {
		log.WithError(err).Error("Failed to list reports for trend")
		return nil, fmt.Errorf("service: could not load reports for trend: %w", err)
	}

	events := make([]trend.Event, len(reports))
	for i, r := range reports {
		events[i] = trend.Event{Timestamp: r.CreatedAt, Category: r.Category}
	}
	result := bucketer.Compute(now, events)

	s.metrics.TrendComputations.Inc()
	s.metrics.TrendSkipped.Add(float64(result.Skipped))
	if result.Skipped > 0 {
		log.WithField("skipped", result.Skipped).Warn("Some reports have unrecognized timestamps")
	}

	if s.cfg.TrendCacheTTL > 0 {
		if err := s.repo.SetTrendCache(ctx, key, &result, s.cfg.TrendCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to set trend cache")
		}
	}
	return &result, nil
}

func (s *reportService) Classify(text string) classifier.Category {
	return s.classifier.Load().Classify(text)
}

// Categories возвращает категории в порядке правил, fallback последним
func (s *reportService) Categories() []models.CategoryInfo {
	c := s.classifier.Load()
	cats := c.Categories()
	out := make([]models.CategoryInfo, len(cats))
	for i, cat := range cats {
		out[i] = models.CategoryInfo{
			Category: cat,
			Keywords: c.Keywords(cat),
			Color:    c.Color(cat),
		}
	}
	return out
}

func (s *reportService) Color(category classifier.Category) classifier.Color {
	return s.classifier.Load().Color(category)
}

// SetClassifier подменяет правила и сбрасывает кэш трендов, так как от правил
// зависят порядок серий и цвета. Уже сохраненные посты не переклассифицируются.
func (s *reportService) SetClassifier(ctx context.Context, c *classifier.Classifier) {
	if c == nil {
		return
	}
	s.classifier.Store(c)
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "SetClassifier",
		"categories": len(c.Categories()),
	})
	if err := s.repo.InvalidateTrendCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate trend cache")
	}
	log.Info("Classifier rules replaced")
}

// PurgeZeroScore удаляет посты с нулевой оценкой
func (s *reportService) PurgeZeroScore(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "PurgeZeroScore",
	})

	deleted, err := s.repo.DeleteZeroScore(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to delete zero score reports")
		return 0, fmt.Errorf("service: could not purge zero score reports: %w", err)
	}
	if deleted > 0 {
		if err := s.repo.InvalidateTrendCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate trend cache")
		}
	}

	log.WithField("deleted", deleted).Info("Zero score reports purged")
	return deleted, nil
}

// Stats возвращает сводку по оценкам
func (s *reportService) Stats(ctx context.Context) (*models.ReportStats, error) {
	stats, err := s.repo.CountStats(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "report",
			"method":  "Stats",
		}).WithError(err).Error("Failed to count report stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

func (s *reportService) trendCacheKey() string {
	return fmt.Sprintf("trend:%s:%s:%s", s.cfg.TrendWindow, s.cfg.TrendBucket, locationName(s.cfg.TrendLocation))
}

func locationName(loc *time.Location) string {
	if loc == nil {
		return time.UTC.String()
	}
	return loc.String()
}

func normalizeCategory(category string) classifier.Category {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return ""
	}
	return classifier.Category(category)
}
