package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/webclient-go/config"
	"github.com/hireloop/webclient-go/internal/adapters/memstore"
	"github.com/hireloop/webclient-go/internal/adapters/navigation"
	"github.com/hireloop/webclient-go/internal/adapters/profileapi"
	"github.com/hireloop/webclient-go/internal/adapters/redisstore"
	"github.com/hireloop/webclient-go/internal/ports"
	"github.com/hireloop/webclient-go/internal/service"
)

// SessionDeps groups inputs for BuildSessionController.
type SessionDeps struct {
	Config      config.AppConfig
	RedisClient redis.UniversalClient // optional; nil falls back to in-memory persistence
	Navigator   ports.Navigator       // optional; nil uses a log-only navigator
	Logger      *slog.Logger
}

// BuildSessionController wires stores, checker, and navigator into a
// controller. The ephemeral store is always in-memory: the intended
// destination marker must not survive a restart.
func BuildSessionController(deps SessionDeps) (*service.Controller, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var persisted ports.KeyValueStore
	if deps.RedisClient != nil {
		persisted = redisstore.NewWithPrefix(deps.RedisClient, deps.Config.Session.StorePrefix)
	} else {
		logger.Warn("persisted store falling back to memory", "is_dev", deps.Config.IsDev)
		persisted = memstore.New()
	}

	var checker ports.ProfileChecker
	if deps.Config.Profile.Endpoint != "" {
		client, err := profileapi.NewClient(profileapi.Config{
			Endpoint:   deps.Config.Profile.Endpoint,
			ResultExpr: deps.Config.Profile.ResultExpr,
			Timeout:    deps.Config.Profile.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("build profile checker: %w", err)
		}
		checker = client
	} else {
		// Absent checker means every intern check resolves to Unknown,
		// which routes to onboarding.
		logger.Warn("profile endpoint not configured; intern checks resolve to unknown")
	}

	nav := deps.Navigator
	if nav == nil {
		nav = navigation.New(navigation.Config{Logger: logger})
	}

	return service.NewController(service.ControllerOptions{
		Persisted:  persisted,
		Ephemeral:  memstore.New(),
		Profiles:   checker,
		Navigator:  nav,
		State:      service.NewSessionState(),
		Logger:     logger,
		LoginRoute: deps.Config.Session.LoginRoute,
	}), nil
}
