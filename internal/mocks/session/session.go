package session

// Package session contains simple hand-written test doubles for the session
// controller's ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Navigator      = (*RecordingNavigator)(nil)
	_ ports.ProfileChecker = (*StubProfileChecker)(nil)
)

// NavigationCall records one Navigate or Reload invocation.
type NavigationCall struct {
	Route    string
	State    *domainsession.RouteState
	Reloaded bool
}

// RecordingNavigator captures navigation calls for assertions.
type RecordingNavigator struct {
	NavigateFunc func(ctx context.Context, route string, state *domainsession.RouteState) error
	ReloadFunc   func(ctx context.Context, route string) error

	Calls []NavigationCall
}

func (n *RecordingNavigator) Navigate(ctx context.Context, route string, state *domainsession.RouteState) error {
	n.Calls = append(n.Calls, NavigationCall{Route: route, State: state})
	if n.NavigateFunc != nil {
		return n.NavigateFunc(ctx, route, state)
	}
	return nil
}

func (n *RecordingNavigator) Reload(ctx context.Context, route string) error {
	n.Calls = append(n.Calls, NavigationCall{Route: route, Reloaded: true})
	if n.ReloadFunc != nil {
		return n.ReloadFunc(ctx, route)
	}
	return nil
}

// Last returns the most recent call, if any.
func (n *RecordingNavigator) Last() (NavigationCall, bool) {
	if len(n.Calls) == 0 {
		return NavigationCall{}, false
	}
	return n.Calls[len(n.Calls)-1], true
}

// StubProfileChecker returns a fixed status or delegates to CheckFunc.
type StubProfileChecker struct {
	CheckFunc func(ctx context.Context, token string) (domainsession.ProfileStatus, error)

	Status domainsession.ProfileStatus
	Err    error

	// Tokens records each checked token.
	Tokens []string
}

func (s *StubProfileChecker) Check(ctx context.Context, token string) (domainsession.ProfileStatus, error) {
	s.Tokens = append(s.Tokens, token)
	if s.CheckFunc != nil {
		return s.CheckFunc(ctx, token)
	}
	return s.Status, s.Err
}
