package service

import (
	"maps"
	"sync"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
)

// SessionState is the single shared holder of the current principal. It is
// injected into every consumer by reference; only the Controller mutates it.
// Invariant: a session is present iff the client is authenticated.
type SessionState struct {
	mu      sync.RWMutex
	current *domainsession.Session
}

// NewSessionState creates an empty, unauthenticated state.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// Snapshot returns a copy of the current session and whether one exists.
// The Extra map is cloned so callers cannot mutate shared state.
func (s *SessionState) Snapshot() (domainsession.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domainsession.Session{}, false
	}
	sess := *s.current
	sess.Extra = maps.Clone(s.current.Extra)
	return sess, true
}

// Authenticated reports whether a principal is present.
func (s *SessionState) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *SessionState) replace(sess domainsession.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
}

// merge shallow-merges fields into the current session. Known field names
// update the typed fields; everything else lands in Extra verbatim.
func (s *SessionState) merge(fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	for k, v := range fields {
		switch k {
		case "token":
			s.current.Token = asString(v)
		case "userId":
			s.current.UserID = asString(v)
		case "role":
			s.current.Role = domainsession.NormalizeRole(asString(v))
		case "email":
			s.current.Email = domainsession.Sanitize(asString(v))
		case "firstName":
			s.current.FirstName = domainsession.Sanitize(asString(v))
		case "lastName":
			s.current.LastName = domainsession.Sanitize(asString(v))
		case "userType":
			s.current.UserType = asString(v)
		default:
			if s.current.Extra == nil {
				s.current.Extra = make(map[string]any)
			}
			s.current.Extra[k] = v
		}
	}
}

func (s *SessionState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
