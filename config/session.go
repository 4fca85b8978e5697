package config

import "strings"

// SessionConfig groups session-controller configuration.
type SessionConfig struct {
	// LoginRoute is the route the guard redirects unauthenticated users to.
	// Used as a sentinel to detect "no real intended destination".
	LoginRoute string `env:"LOGIN_ROUTE" envDefault:"/login"`

	// StorePrefix scopes this client's keys in the persisted store.
	StorePrefix string `env:"STORE_PREFIX" envDefault:"webclient:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	s.LoginRoute = strings.TrimSpace(s.LoginRoute)
	if s.LoginRoute == "" {
		s.LoginRoute = "/login"
	}
	if s.StorePrefix == "" {
		s.StorePrefix = "webclient:"
	}
}
