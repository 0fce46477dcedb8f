package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/config"
	v1 "github.com/shenikar/disaster_dashboard/internal/handler/http/v1"
	"github.com/shenikar/disaster_dashboard/internal/ingest"
	"github.com/shenikar/disaster_dashboard/internal/observability"
	"github.com/shenikar/disaster_dashboard/internal/repository"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/watch"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
	"github.com/shenikar/disaster_dashboard/pkg/logger"
	"github.com/shenikar/disaster_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/disaster_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/disaster_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Dashboard API
// @version 1.0
// @description Classified disaster reports, map locations and per-category trends.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// loadClassifier берет правила из RULES_FILE, иначе встроенную таблицу
func loadClassifier(cfg *config.Config, log *logrus.Logger) (*classifier.Classifier, error) {
	if cfg.RulesFile == "" {
		log.Info("Using built-in classifier rules")
		return classifier.Default(), nil
	}
	cls, err := classifier.LoadFile(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	log.WithField("rules_file", cfg.RulesFile).Info("Classifier rules loaded")
	return cls, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown, отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()

	cls, err := loadClassifier(cfg, log)
	if err != nil {
		log.Fatalf("Failed to load classifier rules: %v", err)
	}

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, metrics)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool, redisClient)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, log, cfg, webhookPublisher, metrics, clockwork.NewRealClock(), cls)

	if cfg.RulesWatch {
		rulesWatcher := watch.NewRulesWatcher(cfg.RulesFile, reportService.SetClassifier, log, metrics)
		if err := rulesWatcher.Start(ctx); err != nil {
			log.Fatalf("Failed to start rules watcher: %v", err)
		}
	}

	if cfg.KafkaEnabled() {
		consumer := ingest.NewConsumer(ingest.NewKafkaReader(cfg), reportService, log, metrics,
			ingest.WithRetry(cfg.KafkaMaxRetries, cfg.KafkaRetryDelay))
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.WithError(err).Error("Kafka consumer stopped with error")
			}
		}()
	} else {
		log.Info("KAFKA_BROKERS is not set, Kafka consumer disabled")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware(cfg.CORSOrigins))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
