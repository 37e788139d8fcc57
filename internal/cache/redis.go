package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
)

// RedisStore is a Store backed by Redis. Entries expire server-side via the
// key TTL; EvictExpired is therefore a no-op reported as zero removals. Any
// Redis failure degrades to a cache miss, never to a pricing failure.
type RedisStore struct {
	client *redis.Client
	clock  timeutil.Clock
	log    *logger.Logger
}

// NewRedisStore creates a RedisStore for the given address.
func NewRedisStore(addr string, clock timeutil.Clock, log *logger.Logger) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		clock:  clock,
		log:    log,
	}
}

// Get implements Store.Get.
func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, bool) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Str("key", key).Err(err).Msg("Cache read failed, treating as miss")
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("Discarding undecodable cache entry")
		return nil, false
	}

	// The server TTL should have removed expired keys, but clock skew can
	// leave a stale entry behind; honor the recorded expiry regardless.
	if s.clock.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return &entry, true
}

// Put implements Store.Put.
func (s *RedisStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	now := s.clock.Now()
	entry := Entry{
		Key:       key,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("Failed to encode cache entry")
		return
	}

	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("Cache write failed, continuing without cache")
	}
}

// EvictExpired implements Store.EvictExpired. Redis expires keys server-side.
func (s *RedisStore) EvictExpired(context.Context) int {
	return 0
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store at compile time.
var _ Store = (*RedisStore)(nil)
