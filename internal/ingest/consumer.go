package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = time.Second
	maxRetryDelay      = 30 * time.Second
)

// MessageReader - часть kafka-go Reader, которая нужна консьюмеру
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// ReportAdder сохраняет пост, реализуется service.ReportService
type ReportAdder interface {
	AddReport(ctx context.Context, report *models.Report) (bool, error)
}

// RawPost - пост в том виде, в котором его публикует скрейпер
type RawPost struct {
	Author       string   `json:"author"`
	Text         string   `json:"text"`
	OriginalText string   `json:"original_text"`
	Keyword      string   `json:"keyword"`
	URL          string   `json:"url"`
	CreatedAt    string   `json:"createdAt"`
	Location     *string  `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Score        *int     `json:"score"`
}

// Consumer читает сырые посты из Kafka и передает их в сервис
type Consumer struct {
	reader      MessageReader
	reports     ReportAdder
	logger      *logrus.Logger
	metrics     *observability.Metrics
	maxAttempts int
	baseDelay   time.Duration
}

type Option func(*Consumer)

// WithRetry задает число попыток сохранения поста и начальную задержку между ними.
// После последней неудачной попытки сообщение коммитится и считается failed.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(c *Consumer) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		if baseDelay > 0 {
			c.baseDelay = baseDelay
		}
	}
}

// NewKafkaReader создает reader группы консьюмеров для топика с сырыми постами
func NewKafkaReader(cfg *config.Config) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func NewConsumer(reader MessageReader, reports ReportAdder, logger *logrus.Logger, metrics *observability.Metrics, opts ...Option) *Consumer {
	c := &Consumer{
		reader:      reader,
		reports:     reports,
		logger:      logger,
		metrics:     metrics,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run обрабатывает сообщения до отмены контекста
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Starting Kafka consumer...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close Kafka reader")
		}
		c.logger.Info("Stopping Kafka consumer.")
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetch kafka message: %w", err)
		}

		if err := c.handle(ctx, msg); err != nil {
			// контекст отменен во время повторов, offset не коммитим
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit kafka message: %w", err)
		}
	}
}

// handle возвращает ошибку только если контекст отменен до сохранения поста.
// Пост, который не удалось сохранить за maxAttempts попыток, пропускается.
func (c *Consumer) handle(ctx context.Context, msg kafkago.Message) error {
	log := c.logger.WithFields(logrus.Fields{
		"topic":     msg.Topic,
		"partition": msg.Partition,
		"offset":    msg.Offset,
	})

	report, err := DecodeReport(msg.Value)
	if err != nil {
		log.WithError(err).Warn("Skipping invalid Kafka message")
		c.metrics.IngestMessages.WithLabelValues("invalid").Inc()
		return nil
	}

	delay := c.baseDelay
	for attempt := 1; ; attempt++ {
		created, err := c.reports.AddReport(ctx, report)
		if err == nil {
			outcome := "stored"
			if !created {
				outcome = "duplicate"
			}
			c.metrics.IngestMessages.WithLabelValues(outcome).Inc()
			return nil
		}

		c.metrics.IngestMessages.WithLabelValues("error").Inc()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt >= c.maxAttempts {
			log.WithError(err).WithField("url", report.URL).
				Errorf("Failed to store report after %d attempts, skipping message", attempt)
			c.metrics.IngestMessages.WithLabelValues("failed").Inc()
			return nil
		}

		log.WithError(err).Warnf("Failed to store report. Retrying in %v. Attempts left: %d", delay, c.maxAttempts-attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2 // Экспоненциальная задержка
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}

// DecodeReport преобразует JSON скрейпера в Report
func DecodeReport(data []byte) (*models.Report, error) {
	var raw RawPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode raw post: %w", err)
	}
	if strings.TrimSpace(raw.URL) == "" {
		return nil, errors.New("raw post has no url")
	}
	if strings.TrimSpace(raw.Text) == "" {
		return nil, errors.New("raw post has no text")
	}
	if (raw.Latitude == nil) != (raw.Longitude == nil) {
		return nil, errors.New("raw post has only one of latitude and longitude")
	}

	return &models.Report{
		Author:       raw.Author,
		Text:         raw.Text,
		OriginalText: raw.OriginalText,
		Keyword:      raw.Keyword,
		URL:          raw.URL,
		CreatedAt:    raw.CreatedAt,
		Location:     raw.Location,
		Latitude:     raw.Latitude,
		Longitude:    raw.Longitude,
		Score:        raw.Score,
	}, nil
}
