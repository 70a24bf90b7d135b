package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each session is one JSON string key that expires after the configured
// idle TTL.
type Storage struct {
	client *redis.Client
	keys   keyspace
	ttl    time.Duration
}

// New connects to Redis and checks the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		keys:   keyspace(prefix),
		ttl:    cfg.SessionTTL,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, s.keys.session(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// GetSession loads a session and pushes its expiry out by the TTL
func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	key := s.keys.session(id)

	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.client.GetEx(ctx, key, s.ttl)
	} else {
		cmd = s.client.Get(ctx, key)
	}

	data, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	if err := s.client.Del(ctx, s.keys.session(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// CountSessions walks the session keyspace with SCAN so it never blocks the server
func (s *Storage) CountSessions(ctx context.Context) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, s.keys.sessions(), 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}
