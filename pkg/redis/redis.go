package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingAttempts = 5
	pingInterval = time.Second
)

// NewRedisClient создает клиент Redis и ждет, пока сервер начнет отвечать
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
	})

	// При старте через docker compose Redis может подняться позже приложения
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			return rdb, nil
		}
		if attempt == pingAttempts {
			break
		}
		select {
		case <-ctx.Done():
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", ctx.Err())
		case <-time.After(pingInterval):
		}
	}

	rdb.Close()
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", pingAttempts, err)
}
