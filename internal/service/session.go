package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

// ControllerOptions groups dependencies for Controller.
type ControllerOptions struct {
	Persisted ports.KeyValueStore
	Ephemeral ports.KeyValueStore
	Profiles  ports.ProfileChecker // optional; absence counts as an unknown profile
	Navigator ports.Navigator
	State     *SessionState
	Logger    *slog.Logger

	// LoginRoute is the sentinel used to reject a stale intended
	// destination pointing back at the login page. Defaults to RouteLogin.
	LoginRoute string
}

// Controller orchestrates session hydration at boot, login, logout, and
// role queries. It is the only component with branching auth business logic;
// every failure branch resolves into a state update or a navigation call.
type Controller struct {
	persisted  ports.KeyValueStore
	ephemeral  ports.KeyValueStore
	profiles   ports.ProfileChecker
	navigator  ports.Navigator
	state      *SessionState
	logger     *slog.Logger
	loginRoute string
}

// NewController constructs a Controller. A fresh client id tags all of the
// instance's log records.
func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loginRoute := opts.LoginRoute
	if loginRoute == "" {
		loginRoute = domainsession.RouteLogin
	}
	state := opts.State
	if state == nil {
		state = NewSessionState()
	}
	return &Controller{
		persisted:  opts.Persisted,
		ephemeral:  opts.Ephemeral,
		profiles:   opts.Profiles,
		navigator:  opts.Navigator,
		state:      state,
		logger:     logger.With("client_id", uuid.New().String()),
		loginRoute: loginRoute,
	}
}

// State returns the shared session state for injection into consumers.
func (c *Controller) State() *SessionState { return c.state }

// Hydrate restores the session from the persisted store at application boot.
// Missing identity data is not an error: it leaves the client unauthenticated
// without navigating anywhere. An intern with an incomplete or unverifiable
// profile is routed to onboarding.
func (c *Controller) Hydrate(ctx context.Context) error {
	if err := c.persisted.Cleanup(ctx, domainsession.IdentityKeys()...); err != nil {
		c.logger.WarnContext(ctx, "persisted store cleanup failed", "error", err)
	}

	token := c.readValue(ctx, domainsession.KeyToken)
	rawRole := c.readValue(ctx, domainsession.KeyRole)
	userID := c.readValue(ctx, domainsession.KeyUserID)

	if token == "" || rawRole == "" || userID == "" {
		c.state.clear()
		c.logger.InfoContext(ctx, "hydrate: no stored session")
		return nil
	}

	role := domainsession.NormalizeRole(rawRole)
	sess := domainsession.Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		Email:     c.readValue(ctx, domainsession.KeyUserEmail, domainsession.KeyEmail),
		FirstName: c.readValue(ctx, domainsession.KeyUserFirstName, domainsession.KeyFirstName),
		LastName:  c.readValue(ctx, domainsession.KeyUserLastName, domainsession.KeyLastName),
		UserType:  c.readValue(ctx, domainsession.KeyUserType),
	}
	c.state.replace(sess)
	c.logger.InfoContext(ctx, "hydrate: session restored", "user_id", userID, "role", role)

	if role != domainsession.RoleIntern {
		return nil
	}

	status := c.checkProfile(ctx, token)
	if !status.NeedsOnboarding() {
		return nil
	}

	// Hydrated interns carry no extras, so the bulk-imported marker is
	// always set on the onboarding redirect.
	state := &domainsession.RouteState{UserData: domainsession.UserData{
		UserID:       sess.UserID,
		Email:        sess.Email,
		FirstName:    sess.FirstName,
		LastName:     sess.LastName,
		BulkImported: true,
	}}
	c.logger.InfoContext(ctx, "hydrate: intern requires onboarding", "profile_status", status.String())
	if err := c.navigator.Navigate(ctx, domainsession.RouteInternDetails, state); err != nil {
		return fmt.Errorf("navigate to onboarding: %w", err)
	}
	return nil
}

// LoginInput groups parameters for Login.
type LoginInput struct {
	Identity domainsession.Identity

	// SkipNavigation suppresses the routing decision; callers that manage
	// navigation themselves (e.g. multi-step registration) set it.
	SkipNavigation bool

	// Destination overrides the routing decision unless it is the login
	// route itself.
	Destination string
}

// Login establishes the session from a validated identity payload, persists
// it under current and legacy key names, and applies the navigation decision
// table: explicit or intended destination first, intern onboarding second,
// role dashboard last.
func (c *Controller) Login(ctx context.Context, in LoginInput) error {
	id := in.Identity
	role := domainsession.NormalizeRole(id.Role)

	sess := domainsession.Session{
		Token:     id.Token,
		UserID:    id.UserID,
		Role:      role,
		Email:     domainsession.Sanitize(id.Email),
		FirstName: domainsession.Sanitize(id.FirstName),
		LastName:  domainsession.Sanitize(id.LastName),
		UserType:  id.UserType,
		Extra:     id.Extra,
	}
	if sess.UserType == "" {
		if ut, ok := id.Extra[domainsession.KeyUserType].(string); ok {
			sess.UserType = ut
		}
	}

	c.persistSession(ctx, sess)
	c.state.replace(sess)
	c.logger.InfoContext(ctx, "login", "user_id", sess.UserID, "role", role)

	if in.SkipNavigation {
		return nil
	}
	return c.decideRoute(ctx, sess, in.Destination)
}

// Logout clears every persisted identity key (current and legacy names), the
// intended-destination marker, and the session state, then forces a full
// reload to the root route so every dependent component resets.
func (c *Controller) Logout(ctx context.Context) error {
	c.clearAll(ctx)
	c.logger.InfoContext(ctx, "logout")
	if err := c.navigator.Reload(ctx, domainsession.RouteRoot); err != nil {
		return fmt.Errorf("reload after logout: %w", err)
	}
	return nil
}

// ForceLogout is the recovery path: identical clearing to Logout, but a soft
// navigation to root instead of a full reload.
func (c *Controller) ForceLogout(ctx context.Context) error {
	c.clearAll(ctx)
	c.logger.InfoContext(ctx, "force logout")
	if err := c.navigator.Navigate(ctx, domainsession.RouteRoot, nil); err != nil {
		return fmt.Errorf("navigate after force logout: %w", err)
	}
	return nil
}

// UpdateUser shallow-merges fields into the current session. It is a no-op
// when unauthenticated.
func (c *Controller) UpdateUser(_ context.Context, fields map[string]any) {
	c.state.merge(fields)
}

// IsAuthenticated reports whether a session exists.
func (c *Controller) IsAuthenticated() bool { return c.state.Authenticated() }

// Current returns a snapshot of the session, if any.
func (c *Controller) Current() (domainsession.Session, bool) { return c.state.Snapshot() }

// HasRole reports whether the current session satisfies the required role,
// honoring the jobSeeker and admin spelling aliases.
func (c *Controller) HasRole(required domainsession.Role) bool {
	sess, ok := c.state.Snapshot()
	if !ok {
		return false
	}
	return sess.Role.Matches(required)
}

func (c *Controller) IsJobSeeker() bool { return c.HasRole(domainsession.RoleJobSeeker) }
func (c *Controller) IsRecruiter() bool { return c.HasRole(domainsession.RoleRecruiter) }
func (c *Controller) IsIntern() bool    { return c.HasRole(domainsession.RoleIntern) }
func (c *Controller) IsAdmin() bool     { return c.HasRole(domainsession.RoleAdmin) }

// decideRoute applies the post-login navigation table, first match wins.
func (c *Controller) decideRoute(ctx context.Context, sess domainsession.Session, explicit string) error {
	marker := c.takeIntendedDestination(ctx)
	dest := explicit
	if dest == "" {
		dest = marker
	}
	if dest != "" && dest != c.loginRoute {
		c.logger.InfoContext(ctx, "login: intended destination", "route", dest)
		return c.navigate(ctx, dest, nil)
	}

	if sess.Role == domainsession.RoleIntern && !domainsession.Truthy(sess.Extra["profileCompleted"]) {
		state := &domainsession.RouteState{UserData: domainsession.UserData{
			UserID:       sess.UserID,
			Email:        sess.Email,
			FirstName:    sess.FirstName,
			LastName:     sess.LastName,
			BulkImported: domainsession.Truthy(sess.Extra["bulkImported"]),
		}}
		c.logger.InfoContext(ctx, "login: intern requires onboarding")
		return c.navigate(ctx, domainsession.RouteInternDetails, state)
	}

	var route string
	switch sess.Role {
	case domainsession.RoleAdmin:
		route = domainsession.RouteAdmin
	case domainsession.RoleRecruiter:
		route = domainsession.RouteRecruiterDashboard
	case domainsession.RoleIntern:
		route = domainsession.RouteInternDashboard
	default:
		// Unrecognized roles fall through to the job-seeker dashboard.
		route = domainsession.RouteJobSeekerDashboard
	}
	c.logger.InfoContext(ctx, "login: role dashboard", "route", route, "role", sess.Role)
	return c.navigate(ctx, route, nil)
}

func (c *Controller) navigate(ctx context.Context, route string, state *domainsession.RouteState) error {
	if err := c.navigator.Navigate(ctx, route, state); err != nil {
		return fmt.Errorf("navigate to %s: %w", route, err)
	}
	return nil
}

// persistSession writes identity fields under both current and legacy key
// names so older read paths keep working. Write failures are logged and
// tolerated: the in-memory session stays authoritative for this run.
func (c *Controller) persistSession(ctx context.Context, sess domainsession.Session) {
	pairs := []struct{ key, value string }{
		{domainsession.KeyToken, sess.Token},
		{domainsession.KeyRole, string(sess.Role)},
		{domainsession.KeyUserID, sess.UserID},
		{domainsession.KeyUserEmail, sess.Email},
		{domainsession.KeyEmail, sess.Email},
		{domainsession.KeyUserFirstName, sess.FirstName},
		{domainsession.KeyFirstName, sess.FirstName},
		{domainsession.KeyUserLastName, sess.LastName},
		{domainsession.KeyLastName, sess.LastName},
	}
	if sess.UserType != "" {
		pairs = append(pairs, struct{ key, value string }{domainsession.KeyUserType, sess.UserType})
	}

	for _, p := range pairs {
		if err := c.persisted.Set(ctx, p.key, p.value); err != nil {
			c.logger.WarnContext(ctx, "persist session field failed", "key", p.key, "error", err)
		}
	}
}

// readValue returns the first stored value among keys that is neither absent
// nor the literal "undefined". Store errors count as absent.
func (c *Controller) readValue(ctx context.Context, keys ...string) string {
	for _, k := range keys {
		v, err := c.persisted.Get(ctx, k)
		if err != nil {
			if !errors.Is(err, ports.ErrNotFound) {
				c.logger.WarnContext(ctx, "persisted store read failed", "key", k, "error", err)
			}
			continue
		}
		if v = domainsession.Sanitize(v); v != "" {
			return v
		}
	}
	return ""
}

// takeIntendedDestination consumes the one-shot route marker left by the
// route guard: read then remove, so a second login cannot replay it.
func (c *Controller) takeIntendedDestination(ctx context.Context) string {
	v, err := c.ephemeral.Get(ctx, domainsession.KeyIntendedDestination)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			c.logger.WarnContext(ctx, "ephemeral store read failed", "error", err)
		}
		return ""
	}
	if err := c.ephemeral.Remove(ctx, domainsession.KeyIntendedDestination); err != nil {
		c.logger.WarnContext(ctx, "clear intended destination failed", "error", err)
	}
	return domainsession.Sanitize(v)
}

// checkProfile runs the completeness check, collapsing a missing checker or
// any call failure into ProfileUnknown. Unknown is never treated as complete.
func (c *Controller) checkProfile(ctx context.Context, token string) domainsession.ProfileStatus {
	if c.profiles == nil {
		c.logger.WarnContext(ctx, "profile checker not configured")
		return domainsession.ProfileUnknown
	}
	status, err := c.profiles.Check(ctx, token)
	if err != nil {
		c.logger.WarnContext(ctx, "profile check failed", "error", err, "profile_status", status.String())
	}
	return status
}

func (c *Controller) clearAll(ctx context.Context) {
	for _, k := range domainsession.LogoutKeys() {
		if err := c.persisted.Remove(ctx, k); err != nil {
			c.logger.WarnContext(ctx, "remove persisted key failed", "key", k, "error", err)
		}
	}
	if err := c.ephemeral.Remove(ctx, domainsession.KeyIntendedDestination); err != nil {
		c.logger.WarnContext(ctx, "remove intended destination failed", "error", err)
	}
	c.state.clear()
}
