package memstore

// Package memstore provides an in-memory key-value store. It backs the
// tab-scoped ephemeral store (which must not survive a restart) and serves as
// the persisted store in development and tests.

import (
	"context"
	"sync"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

var _ ports.KeyValueStore = (*Store)(nil)

// Store is a mutex-guarded map satisfying ports.KeyValueStore.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *Store) Cleanup(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		if s.values[k] == domainsession.UndefinedLiteral {
			delete(s.values, k)
		}
	}
	return nil
}

// Len reports the number of stored keys. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
