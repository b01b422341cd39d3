package counter

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/config"
	"github.com/gyeh/clinicmap/internal/db"
)

// Open connects the backend selected by cfg. The returned close function
// releases the connection and is never nil.
func Open(ctx context.Context, cfg config.Counter, log zerolog.Logger) (Store, func(), error) {
	key := cfg.Key
	if key == "" {
		key = config.DefaultCounterKey
	}
	log = log.With().Str("backend", cfg.Backend).Str("key", key).Logger()

	switch strings.ToLower(cfg.Backend) {
	case "", config.BackendMemory:
		log.Debug().Msg("using in-memory view counter")
		return NewMemoryStore(), func() {}, nil

	case config.BackendPostgres:
		if cfg.DSN == "" {
			return nil, func() {}, fmt.Errorf("postgres: %w", ErrNotConfigured)
		}
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, func() {}, err
		}
		log.Debug().Msg("connected to postgres")
		return NewPostgresStore(pool, key), pool.Close, nil

	case config.BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, func() {}, fmt.Errorf("redis: %w", ErrNotConfigured)
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, func() {}, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Debug().Msg("connected to redis")
		return NewRedisStore(client, key), func() { client.Close() }, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown counter backend %q", cfg.Backend)
	}
}
