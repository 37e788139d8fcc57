// Package cache provides the expiring rate cache for provider search results
// and hotel metadata. The cache is advisory: a failing backend never aborts a
// pricing request, the caller simply falls through to a live fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
)

// Default TTLs, matched to the volatility of each data type: live search
// results go stale in minutes, hotel metadata is near-static.
const (
	DefaultSearchTTL    = 30 * time.Minute
	DefaultHotelMetaTTL = 24 * time.Hour
)

// Entry is one cached payload with its expiry bookkeeping.
type Entry struct {
	// Key is the normalized cache key
	Key string `json:"key"`

	// Payload is the JSON-encoded cached value
	Payload []byte `json:"payload"`

	// CreatedAt is when the entry was stored
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the entry stops being served. Entries past ExpiresAt
	// are treated as absent regardless of physical deletion timing.
	ExpiresAt time.Time `json:"expiresAt"`

	// HitCount counts how often the entry was served (diagnostics only)
	HitCount int64 `json:"hitCount"`
}

// Store is the backend contract for the rate cache. Implementations must
// treat entries past their expiry as absent and must tolerate concurrent
// Get/Put/EvictExpired on the same keys.
type Store interface {
	// Get returns the entry for key, or false when absent or expired.
	Get(ctx context.Context, key string) (*Entry, bool)

	// Put stores payload under key with the given TTL, overwriting any
	// existing entry.
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration)

	// EvictExpired removes expired entries and returns how many were removed.
	EvictExpired(ctx context.Context) int
}

// RateCache is the typed layer over a Store, scoping TTLs per data type.
type RateCache struct {
	store     Store
	searchTTL time.Duration
	hotelTTL  time.Duration
	log       *logger.Logger
}

// Option customizes a RateCache.
type Option func(*RateCache)

// WithSearchTTL overrides the search result TTL.
func WithSearchTTL(ttl time.Duration) Option {
	return func(c *RateCache) { c.searchTTL = ttl }
}

// WithHotelMetaTTL overrides the hotel metadata TTL.
func WithHotelMetaTTL(ttl time.Duration) Option {
	return func(c *RateCache) { c.hotelTTL = ttl }
}

// WithLogger sets the cache's logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *RateCache) { c.log = log }
}

// New creates a RateCache over the given store.
func New(store Store, opts ...Option) *RateCache {
	c := &RateCache{
		store:     store,
		searchTTL: DefaultSearchTTL,
		hotelTTL:  DefaultHotelMetaTTL,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSearch returns the cached search result set for key, if fresh.
func (c *RateCache) GetSearch(ctx context.Context, key string) (*domain.SearchResultSet, bool) {
	entry, ok := c.store.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var result domain.SearchResultSet
	if err := json.Unmarshal(entry.Payload, &result); err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("Discarding undecodable cache entry")
		return nil, false
	}
	return &result, true
}

// PutSearch caches a search result set under key with the search TTL.
func (c *RateCache) PutSearch(ctx context.Context, key string, result *domain.SearchResultSet) {
	payload, err := json.Marshal(result)
	if err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("Failed to encode search result for cache")
		return
	}
	c.store.Put(ctx, key, payload, c.searchTTL)
}

// GetHotel returns the cached hotel document, if fresh.
func (c *RateCache) GetHotel(ctx context.Context, hotelID string) (*domain.Hotel, bool) {
	entry, ok := c.store.Get(ctx, hotelMetaKey(hotelID))
	if !ok {
		return nil, false
	}

	var hotel domain.Hotel
	if err := json.Unmarshal(entry.Payload, &hotel); err != nil {
		c.log.Warn().Str("hotel_id", hotelID).Err(err).Msg("Discarding undecodable cache entry")
		return nil, false
	}
	return &hotel, true
}

// PutHotel caches a hotel document with the hotel metadata TTL.
func (c *RateCache) PutHotel(ctx context.Context, hotel *domain.Hotel) {
	payload, err := json.Marshal(hotel)
	if err != nil {
		c.log.Warn().Str("hotel_id", hotel.ID).Err(err).Msg("Failed to encode hotel for cache")
		return
	}
	c.store.Put(ctx, hotelMetaKey(hotel.ID), payload, c.hotelTTL)
}

// EvictExpired removes expired entries from the backing store.
func (c *RateCache) EvictExpired(ctx context.Context) int {
	return c.store.EvictExpired(ctx)
}

func hotelMetaKey(hotelID string) string {
	return "hotel-meta:" + hotelID
}
