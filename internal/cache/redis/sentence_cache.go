// Package redis caches split results in Redis, keyed by engine and a hash of
// the document text.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"sentsplit/internal/config"
	"sentsplit/internal/logger"
	"sentsplit/internal/port"
)

const keyPrefix = "sentences:"

type sentenceCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// NewSentenceCache connects to Redis and verifies the connection with a PING.
func NewSentenceCache(cfg *config.CacheConfig) (port.SentenceCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewFromClient(rdb, cfg.TTL), nil
}

// NewFromClient wraps an existing client. A zero ttl stores entries without expiry.
func NewFromClient(rdb *goredis.Client, ttl time.Duration) port.SentenceCache {
	return &sentenceCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.WithComponent("sentence-cache"),
	}
}

func (c *sentenceCache) Get(ctx context.Context, engine, text string) ([]string, bool) {
	key := buildKey(engine, text)
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	var sentences []string
	if err := json.Unmarshal(data, &sentences); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		return nil, false
	}
	if sentences == nil {
		sentences = []string{}
	}
	c.logger.Debug("cache hit", "key", key)
	return sentences, true
}

func (c *sentenceCache) Set(ctx context.Context, engine, text string, sentences []string) {
	key := buildKey(engine, text)
	data, err := json.Marshal(sentences)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

func (c *sentenceCache) GetOrCompute(
	ctx context.Context,
	engine, text string,
	compute func() ([]string, error),
) ([]string, bool, error) {
	if sentences, ok := c.Get(ctx, engine, text); ok {
		return sentences, true, nil
	}
	key := buildKey(engine, text)
	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		if sentences, ok := c.Get(ctx, engine, text); ok {
			return sentences, nil
		}
		sentences, err := compute()
		if err != nil {
			return nil, err
		}
		c.Set(ctx, engine, text, sentences)
		return sentences, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]string), false, nil
}

func (c *sentenceCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func buildKey(engine, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + engine + ":" + hex.EncodeToString(sum[:])
}
