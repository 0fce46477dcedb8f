package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Classifier rules
	RulesFile  string `env:"RULES_FILE"`
	RulesWatch bool   `env:"RULES_WATCH" envDefault:"false"`

	// Trend Config
	TrendWindow   time.Duration  `env:"TREND_WINDOW" envDefault:"24h"`
	TrendBucket   time.Duration  `env:"TREND_BUCKET" envDefault:"1h"`
	TrendLocation *time.Location `env:"TREND_TIMEZONE" envDefault:"UTC"`
	TrendCacheTTL time.Duration  `env:"TREND_CACHE_TTL" envDefault:"30s"`

	// Kafka Config, пустой KAFKA_BROKERS отключает консьюмер
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"raw-disaster-posts"`
	KafkaGroupID string   `env:"KAFKA_GROUP_ID" envDefault:"disaster-dashboard"`
	// Попытки сохранить пост из Kafka, после них сообщение пропускается
	KafkaMaxRetries int           `env:"KAFKA_MAX_RETRIES" envDefault:"5"`
	KafkaRetryDelay time.Duration `env:"KAFKA_RETRY_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		RulesFile:         os.Getenv("RULES_FILE"),
		RulesWatch:        getEnvAsBool("RULES_WATCH", false),
		TrendWindow:       getEnvAsDuration("TREND_WINDOW", 24*time.Hour),
		TrendBucket:       getEnvAsDuration("TREND_BUCKET", time.Hour),
		TrendCacheTTL:     getEnvAsDuration("TREND_CACHE_TTL", 30*time.Second),
		KafkaBrokers:      getEnvAsList("KAFKA_BROKERS", nil),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "raw-disaster-posts"),
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "disaster-dashboard"),
		KafkaMaxRetries:   getEnvAsInt("KAFKA_MAX_RETRIES", 5),
		KafkaRetryDelay:   getEnvAsDuration("KAFKA_RETRY_DELAY", time.Second),
		APIKeys:           getEnvAsList("API_KEYS", nil),
		CORSOrigins:       getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}

	loc, err := time.LoadLocation(getEnv("TREND_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TREND_TIMEZONE: %w", err)
	}
	cfg.TrendLocation = loc

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.TrendWindow <= 0 || cfg.TrendBucket <= 0 {
		return nil, fmt.Errorf("TREND_WINDOW and TREND_BUCKET must be positive")
	}
	if cfg.TrendWindow%cfg.TrendBucket != 0 {
		return nil, fmt.Errorf("TREND_WINDOW (%s) must be a multiple of TREND_BUCKET (%s)", cfg.TrendWindow, cfg.TrendBucket)
	}
	if cfg.RulesWatch && cfg.RulesFile == "" {
		return nil, fmt.Errorf("RULES_WATCH requires RULES_FILE")
	}

	return cfg, nil
}

// KafkaEnabled сообщает, нужно ли запускать консьюмер
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
