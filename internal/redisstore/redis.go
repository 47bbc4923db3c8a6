// Package redisstore implements kvstore.Backend on Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rpggio/selflab/internal/kvstore"
)

// Options configures the Redis backend.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Backend stores each collection as a Redis string under Prefix+key.
type Backend struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Backend, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis addr required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Backend{rdb: rdb, prefix: opts.Prefix}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := b.rdb.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if err := b.rdb.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Close() error {
	return b.rdb.Close()
}
