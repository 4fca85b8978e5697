package ports

// Package ports defines interfaces (hexagonal ports) for the session
// controller's collaborators. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
)

// KeyValueStore is a string-keyed, string-valued store. The persisted
// implementation survives reloads (localStorage semantics); the ephemeral
// implementation is scoped to the current process.
type KeyValueStore interface {
	// Get returns the stored value or ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string) error

	Remove(ctx context.Context, key string) error

	// Cleanup removes every listed key whose stored value is the literal
	// "undefined". It is idempotent: a second run is a no-op.
	Cleanup(ctx context.Context, keys ...string) error
}

// ProfileChecker asks the backend whether a principal has completed
// mandatory onboarding. Any failure yields ProfileUnknown alongside the
// error; callers collapse Unknown into Incomplete.
type ProfileChecker interface {
	Check(ctx context.Context, token string) (domainsession.ProfileStatus, error)
}

// Navigator moves the application to a named route. Navigate is a soft
// transition carrying optional state; Reload tears the whole client down and
// boots it again at the given route.
type Navigator interface {
	Navigate(ctx context.Context, route string, state *domainsession.RouteState) error
	Reload(ctx context.Context, route string) error
}

// ErrNotFound is returned by KeyValueStore.Get for absent keys.
type notFoundError struct{}

func (notFoundError) Error() string { return "key not found" }

var ErrNotFound error = notFoundError{}
