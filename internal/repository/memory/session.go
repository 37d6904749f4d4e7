package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

// sessionRepository keeps sessions in a TTL cache. Every read or write
// refreshes the expiry, so idle sessions lapse after ttl.
type sessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) repository.SessionRepository {
	return &sessionRepository{cache: cache.New(ttl, cleanupInterval)}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.cache.Add(session.ID, session.Clone(), cache.DefaultExpiration); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, repository.ErrNotFound)
	}
	r.cache.SetDefault(id, s)
	return s.Clone(), nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(*model.Session) error) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, repository.ErrNotFound)
	}
	updated := s.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.cache.SetDefault(id, updated)
	return updated.Clone(), nil
}

func (r *sessionRepository) Count() int {
	return r.cache.ItemCount()
}

func (r *sessionRepository) lookup(id string) (*model.Session, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	s, ok := v.(*model.Session)
	return s, ok
}
