package navigation

// Package navigation bridges the controller's routing decisions to the host
// application. The host supplies callbacks for soft navigation and full
// reload; every transition is also logged.

import (
	"context"
	"log/slog"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

var _ ports.Navigator = (*HostNavigator)(nil)

// Config groups dependencies for HostNavigator.
type Config struct {
	// OnNavigate performs a soft route transition. Optional.
	OnNavigate func(ctx context.Context, route string, state *domainsession.RouteState) error

	// OnReload tears the client down and boots it at the given route. Optional.
	OnReload func(ctx context.Context, route string) error

	Logger *slog.Logger
}

// HostNavigator forwards route changes to host-supplied callbacks. Missing
// callbacks degrade to log-only, which keeps headless runs harmless.
type HostNavigator struct {
	onNavigate func(ctx context.Context, route string, state *domainsession.RouteState) error
	onReload   func(ctx context.Context, route string) error
	logger     *slog.Logger
}

// New creates a HostNavigator.
func New(cfg Config) *HostNavigator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &HostNavigator{
		onNavigate: cfg.OnNavigate,
		onReload:   cfg.OnReload,
		logger:     logger,
	}
}

func (n *HostNavigator) Navigate(ctx context.Context, route string, state *domainsession.RouteState) error {
	n.logger.InfoContext(ctx, "navigate", "route", route, "with_state", state != nil)
	if n.onNavigate == nil {
		return nil
	}
	return n.onNavigate(ctx, route, state)
}

func (n *HostNavigator) Reload(ctx context.Context, route string) error {
	n.logger.InfoContext(ctx, "reload", "route", route)
	if n.onReload == nil {
		return nil
	}
	return n.onReload(ctx, route)
}
