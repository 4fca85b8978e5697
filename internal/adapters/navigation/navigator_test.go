package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
)

func TestHostNavigator_ForwardsNavigate(t *testing.T) {
	var gotRoute string
	var gotState *domainsession.RouteState

	nav := New(Config{
		OnNavigate: func(_ context.Context, route string, state *domainsession.RouteState) error {
			gotRoute = route
			gotState = state
			return nil
		},
	})

	state := &domainsession.RouteState{UserData: domainsession.UserData{UserID: "u-1"}}
	err := nav.Navigate(context.Background(), domainsession.RouteInternDetails, state)

	require.NoError(t, err)
	assert.Equal(t, domainsession.RouteInternDetails, gotRoute)
	assert.Equal(t, state, gotState)
}

func TestHostNavigator_ForwardsReload(t *testing.T) {
	var gotRoute string

	nav := New(Config{
		OnReload: func(_ context.Context, route string) error {
			gotRoute = route
			return nil
		},
	})

	require.NoError(t, nav.Reload(context.Background(), domainsession.RouteRoot))
	assert.Equal(t, domainsession.RouteRoot, gotRoute)
}

func TestHostNavigator_NilCallbacksAreLogOnly(t *testing.T) {
	nav := New(Config{})

	assert.NoError(t, nav.Navigate(context.Background(), domainsession.RouteAdmin, nil))
	assert.NoError(t, nav.Reload(context.Background(), domainsession.RouteRoot))
}

func TestHostNavigator_PropagatesCallbackError(t *testing.T) {
	nav := New(Config{
		OnNavigate: func(_ context.Context, _ string, _ *domainsession.RouteState) error {
			return errors.New("router detached")
		},
	})

	err := nav.Navigate(context.Background(), domainsession.RouteAdmin, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "router detached")
}
