package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/suderio/grimoire/internal/engine"
)

// RedisStore persists the session snapshot under a single Redis key, for
// setups where the storyteller's state should survive the host machine.
type RedisStore struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey sets the snapshot key.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		s.key = key
	}
}

// WithTTL sets an expiration on the snapshot; zero means keep forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore connects a snapshot store to a Redis server.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisFromClient(client, opts...)
}

// NewRedisFromClient wraps an existing client, mainly for tests.
func NewRedisFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	store := &RedisStore{
		client: client,
		key:    "grimoire:session",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load fetches and decodes the stored snapshot. A missing key yields
// (nil, nil).
func (s *RedisStore) Load() (*engine.Session, error) {
	val, err := s.client.Get(context.Background(), s.key).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}

	var session engine.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to decode redis snapshot: %w", err)
	}
	return &session, nil
}

// Save stores the snapshot at the configured key.
func (s *RedisStore) Save(session engine.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(context.Background(), s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
