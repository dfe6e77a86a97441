package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/zaiqaeats/storefront/pkg/logger"
	"github.com/zaiqaeats/storefront/pkg/metrics"
	"github.com/zaiqaeats/storefront/pkg/redis"
)

// Storage persists cart lines per session.
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Clear(ctx context.Context, sessionID string) error
}

type cartStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisStorage keeps each session's cart in a single JSON slot.
type RedisStorage struct {
	store   cartStore
	ttl     time.Duration
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewRedisStorage builds cart storage over the shared redis client.
func NewRedisStorage(store cartStore, ttl time.Duration, logg *logger.Logger, m *metrics.StorefrontMetrics) *RedisStorage {
	return &RedisStorage{store: store, ttl: ttl, logg: logg, metrics: m}
}

// Load returns the session's cart lines. A missing slot is an empty cart, and
// a slot that no longer decodes is treated the same way after logging; a
// corrupt cart should never block browsing.
func (s *RedisStorage) Load(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := s.store.Get(ctx, s.store.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Line{}, nil
		}
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "cart slot is corrupt; resetting to empty")
		}
		s.metrics.IncCartRestoreError()
		return []Line{}, nil
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

// Save overwrites the session's cart slot and refreshes its TTL.
func (s *RedisStorage) Save(ctx context.Context, sessionID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.store.CartKey(sessionID), payload, s.ttl)
}

// Clear drops the session's cart slot.
func (s *RedisStorage) Clear(ctx context.Context, sessionID string) error {
	return s.store.Del(ctx, s.store.CartKey(sessionID))
}
