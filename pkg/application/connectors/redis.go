package connectors

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"offer_landing/pkg/logx"
)

type Redis struct {
	Username           string
	Password           string
	Address            string
	DatabaseNumber     int
	PoolSize           int
	MinIdleConnections int
	MaxIdleConnections int

	value *redis.Client
}

// Connect creates the client and checks that the server answers.
func (r *Redis) Connect(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		//nolint:exhaustruct
		Network:      "tcp",
		Addr:         r.Address,
		Username:     r.Username,
		Password:     r.Password,
		DB:           r.DatabaseNumber,
		PoolSize:     r.PoolSize,
		MinIdleConns: r.MinIdleConnections,
		MaxIdleConns: r.MaxIdleConnections,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisClient.Ping: %w", err)
	}

	r.value = client

	logger(ctx).Info(
		"redis connected",
		slog.String("address", r.Address),
		slog.Int("database", r.DatabaseNumber),
	)

	return client, nil
}

// Ping is used as the readiness check of the queue backend.
func (r *Redis) Ping(ctx context.Context) error {
	if r.value == nil {
		return errNotConnected
	}

	if err := r.value.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redisClient.Ping: %w", err)
	}

	return nil
}

func (r *Redis) Close(ctx context.Context) {
	if r.value == nil {
		return
	}

	if err := r.value.Close(); err != nil {
		logger(ctx).Error("redisClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"redis disconnected",
		slog.String("address", r.Address),
		slog.Int("database", r.DatabaseNumber),
	)
}
