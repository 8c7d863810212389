// Package redis persists session state as JSON documents in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/spigell/asha-actions/internal/session"
)

const defaultPrefix = "asha:session:"

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

type Store struct {
	client goredis.UniversalClient
	ttl    time.Duration
	prefix string
	now    func() time.Time
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return NewWithClient(client, opts.TTL, opts.Prefix), nil
}

func NewWithClient(client goredis.UniversalClient, ttl time.Duration, prefix string) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Store{client: client, ttl: ttl, prefix: prefix, now: time.Now}
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) Load(ctx context.Context, id string) (*session.State, error) {
	if id == "" {
		return nil, session.ErrEmptyID
	}
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.New(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var state session.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	state.ID = id
	if state.Slots == nil {
		state.Slots = make(map[string]any)
	}
	return &state, nil
}

func (s *Store) Save(ctx context.Context, state *session.State) error {
	if state == nil || state.ID == "" {
		return session.ErrEmptyID
	}
	stored := state.Clone()
	stored.UpdatedAt = s.now()

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.ID, err)
	}
	if err := s.client.Set(ctx, s.key(state.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", state.ID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return session.ErrEmptyID
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
