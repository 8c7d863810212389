// Package memory keeps session state in process memory with expiry.
package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/spigell/asha-actions/internal/session"
)

const cleanupInterval = 10 * time.Minute

type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// New builds a store whose entries expire after ttl of inactivity. A
// non-positive ttl keeps entries forever.
func New(ttl time.Duration) *Store {
	expiry := ttl
	if expiry <= 0 {
		expiry = gocache.NoExpiration
	}
	return &Store{
		cache: gocache.New(expiry, cleanupInterval),
		ttl:   expiry,
		now:   time.Now,
	}
}

func (s *Store) Load(_ context.Context, id string) (*session.State, error) {
	if id == "" {
		return nil, session.ErrEmptyID
	}
	value, ok := s.cache.Get(id)
	if !ok {
		return session.New(id), nil
	}
	state, ok := value.(*session.State)
	if !ok {
		s.cache.Delete(id)
		return session.New(id), nil
	}
	return state.Clone(), nil
}

func (s *Store) Save(_ context.Context, state *session.State) error {
	if state == nil || state.ID == "" {
		return session.ErrEmptyID
	}
	stored := state.Clone()
	stored.UpdatedAt = s.now()
	s.cache.Set(state.ID, stored, s.ttl)
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	if id == "" {
		return session.ErrEmptyID
	}
	s.cache.Delete(id)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
