package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/webclient-go/config"
)

func devConfig() config.AppConfig {
	cfg := config.AppConfig{IsDev: true}
	cfg.Sanitize()
	return cfg
}

func TestBuildSessionController_MemoryFallback(t *testing.T) {
	ctrl, err := BuildSessionController(SessionDeps{Config: devConfig()})

	require.NoError(t, err)
	require.NotNil(t, ctrl)

	// A fresh memory-backed controller hydrates to unauthenticated.
	require.NoError(t, ctrl.Hydrate(context.Background()))
	assert.False(t, ctrl.IsAuthenticated())
}

func TestBuildSessionController_InvalidProfileExpr(t *testing.T) {
	cfg := devConfig()
	cfg.Profile.Endpoint = "https://api.example.com/profile"
	cfg.Profile.ResultExpr = "profile["

	_, err := BuildSessionController(SessionDeps{Config: cfg})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build profile checker")
}

func TestBuildSessionController_WithProfileEndpoint(t *testing.T) {
	cfg := devConfig()
	cfg.Profile.Endpoint = "https://api.example.com/profile"

	ctrl, err := BuildSessionController(SessionDeps{Config: cfg})

	require.NoError(t, err)
	assert.NotNil(t, ctrl)
}
