package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creatorhub/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedFetcher serves repeat lookups from Redis. A nil client disables
// caching and every call goes to the wrapped Fetcher. Cache failures are
// logged and never fail the lookup.
type CachedFetcher struct {
	next   Fetcher
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedFetcher(next Fetcher, client *redis.Client, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    logger.With("social"),
	}
}

// CacheKey is social:<platform>:<handle> using normalized values.
func CacheKey(p Platform, handle string) string {
	return fmt.Sprintf("social:%s:%s", p, handle)
}

func (f *CachedFetcher) Fetch(ctx context.Context, platform, handle string) (*Metrics, error) {
	if f.client == nil {
		return f.next.Fetch(ctx, platform, handle)
	}

	p, err := ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	h, err := NormalizeHandle(handle)
	if err != nil {
		return nil, err
	}
	key := CacheKey(p, h)

	raw, err := f.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var m Metrics
		if jsonErr := json.Unmarshal(raw, &m); jsonErr == nil {
			return &m, nil
		}
		f.log.Warn().Str("key", key).Msg("dropping unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		f.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	m, err := f.next.Fetch(ctx, string(p), h)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return m, nil
	}
	if err := f.client.Set(ctx, key, payload, f.ttl).Err(); err != nil {
		f.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return m, nil
}

// NewRedisClient connects using a redis:// URL and verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}
