// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package kv wraps the Redis-compatible key-value/pub-sub store used to
// persist Problem/Solution records as hashes and to bridge result fan-out
// across API instances.
package kv

import (
	"context"
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/redis/go-redis/v9"
)

// Adapter is a thin wrapper over a redis.Client exposing only the
// operations the core uses.
type Adapter struct {
	client *redis.Client
}

// Config is the subset of connection parameters the adapter needs.
type Config struct {
	Host        string
	Port        int
	DB          int
	MaxConnPool int
}

// Dial connects to Redis and verifies the connection with a PING.
func Dial(ctx context.Context, cfg Config) (*Adapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		DB:       cfg.DB,
		PoolSize: cfg.MaxConnPool,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: redis ping: %v", problem.ErrStorage, err)
	}

	return &Adapter{client: client}, nil
}

// Close releases the underlying connection pool.
func (a *Adapter) Close() error {
	return a.client.Close()
}

// Exists reports whether key is present.
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	n, err := a.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: exists %s: %v", problem.ErrStorage, key, err)
	}
	return n == 1, nil
}

// UpsertFields applies a field-level partial update to the hash stored at
// key without re-serializing the whole record. Applying the same mapping
// twice is idempotent: HSET overwrites, it never accumulates.
func (a *Adapter) UpsertFields(ctx context.Context, key string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := a.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("%w: hset %s: %v", problem.ErrStorage, key, err)
	}
	return nil
}

// GetFields reads back every field of the hash stored at key.
func (a *Adapter) GetFields(ctx context.Context, key string) (map[string]string, error) {
	fields, err := a.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: hgetall %s: %v", problem.ErrStorage, key, err)
	}
	return fields, nil
}

// Keys scans for keys matching pattern. Used by the reconciliation sweep
// to find orphaned IN_QUEUE records; bounded by a cursor
// loop so it never blocks Redis for large keyspaces.
func (a *Adapter) Keys(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	for {
		keys, next, err := a.client.Scan(ctx, cursor, pattern, 256).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", problem.ErrStorage, pattern, err)
		}
		out = append(out, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

// Publish sends raw bytes on a Redis pub/sub channel, used to bridge result
// events to Streamer instances running on other API processes.
func (a *Adapter) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := a.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: publish %s: %v", problem.ErrStorage, channel, err)
	}
	return nil
}

// Subscription is a receive-only view onto a Redis pub/sub channel.
type Subscription struct {
	ps *redis.PubSub
}

// Subscribe opens a pub/sub subscription on channel. Call Close when done.
func (a *Adapter) Subscribe(ctx context.Context, channel string) *Subscription {
	return &Subscription{ps: a.client.Subscribe(ctx, channel)}
}

// Channel returns the Go channel of incoming message payloads.
func (s *Subscription) Channel() <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range s.ps.Channel() {
			out <- []byte(msg.Payload)
		}
	}()
	return out
}

// Close unsubscribes and releases the connection.
func (s *Subscription) Close() error {
	return s.ps.Close()
}

// ProblemChannel is the Redis pub/sub channel name for a given problem id,
// used by the multi-instance Streamer bridge.
func ProblemChannel(problemID string) string {
	return "problem-events:" + problemID
}
