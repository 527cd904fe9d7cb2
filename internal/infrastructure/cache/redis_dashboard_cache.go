// Package cache implementa analytics.DashboardCache sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/internal/observability"
)

var _ analytics.DashboardCache = (*RedisDashboardCache)(nil)

// RedisDashboardCache guarda las respuestas serializadas del dashboard con TTL.
type RedisDashboardCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisDashboardCache construye el cache. prefix se antepone a todas las claves.
func NewRedisDashboardCache(rdb *redis.Client, prefix string) *RedisDashboardCache {
	return &RedisDashboardCache{rdb: rdb, prefix: prefix}
}

// NewClient abre un cliente Redis a partir de una URL redis:// y verifica la conexión.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Get devuelve ok=false si la clave no existe o expiró.
func (c *RedisDashboardCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.DashboardCacheLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		observability.DashboardCacheLookups.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	observability.DashboardCacheLookups.WithLabelValues("hit").Inc()
	return val, true, nil
}

// Set guarda value con expiración ttl.
func (c *RedisDashboardCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
