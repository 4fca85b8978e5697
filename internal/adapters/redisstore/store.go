package redisstore

// Package redisstore provides a Redis-backed persisted key-value store. It is
// the server-side stand-in for the browser's localStorage: string keys,
// string values, no TTL, survives client reloads.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

var _ ports.KeyValueStore = (*Store)(nil)

// Store implements ports.KeyValueStore on a Redis client.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New creates a Redis-backed store with the default key prefix.
func New(client redis.UniversalClient) *Store {
	return NewWithPrefix(client, "webclient:")
}

// NewWithPrefix creates a Redis-backed store with a custom key prefix.
// The prefix scopes one client context's keys away from other tenants.
func NewWithPrefix(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ports.ErrNotFound
	}

	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to remove
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Cleanup removes listed keys holding the literal "undefined". Reads and
// deletes are individually keyed, so a rerun finds nothing left to remove.
func (s *Store) Cleanup(ctx context.Context, keys ...string) error {
	var errs []error
	for _, k := range keys {
		v, err := s.client.Get(ctx, s.prefix+k).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			errs = append(errs, fmt.Errorf("cleanup get %s: %w", k, err))
			continue
		}
		if v != domainsession.UndefinedLiteral {
			continue
		}
		if err := s.client.Del(ctx, s.prefix+k).Err(); err != nil {
			errs = append(errs, fmt.Errorf("cleanup del %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
