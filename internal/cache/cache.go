package cache

import (
	"context"
	"errors"
	"time"

	"github.com/hbomb79/Reel/pkg/logger"
)

const startupPingTimeout = 5 * time.Second

var (
	log = logger.Get("Cache")

	ErrCache = errors.New("cache failure")
)

type (
	// Cache is a short-lived JSON value cache. Implementations must treat a
	// missing key as a miss (false, nil) rather than an error.
	Cache interface {
		GetJSON(ctx context.Context, key string, dest any) (bool, error)
		SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
		Delete(ctx context.Context, keys ...string) error
	}

	Config struct {
		Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
		Address  string        `yaml:"address" env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string        `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0" validate:"min=0"`
		TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"60s"`
	}
)

// New returns a Redis backed cache when enabled. An unreachable server is not
// fatal: the client reconnects on demand and, until it can, every read misses
// and every write fails, both of which callers already tolerate. When disabled
// a no-op cache is returned, which misses on every read.
func New(ctx context.Context, config Config) (Cache, error) {
	if !config.Enabled {
		log.Emit(logger.INFO, "Response cache disabled\n")
		return Noop{}, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	c := newRedisCache(config)
	if err := c.Ping(pingCtx); err != nil {
		log.Emit(logger.WARNING, "Response cache unavailable, continuing without it until redis is reachable: %v\n", err)
		return c, nil
	}

	log.Emit(logger.SUCCESS, "Connected to redis at %s\n", config.Address)
	return c, nil
}

// Noop is a Cache which stores nothing.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }
