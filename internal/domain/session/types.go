package session

// Package session contains domain-level types for the web client's
// authenticated session. It is pure and free of framework/adapter concerns.

// Role represents a principal's application role.
// Keep string form for easy persistence; unrecognized values flow through
// unchanged, so the type admits arbitrary strings beyond the constants below.
type Role string

const (
	RoleJobSeeker Role = "jobSeeker"
	RoleRecruiter Role = "recruiter"
	RoleIntern    Role = "intern"
	RoleAdmin     Role = "admin"
)

// Identity is the validated login payload handed to the controller by the
// upstream credential check. Role carries the raw, un-normalized string.
type Identity struct {
	Token     string
	Role      string
	UserID    string
	Email     string
	FirstName string
	LastName  string
	UserType  string

	// Extra holds any additional fields supplied at login time
	// (e.g. profileCompleted, bulkImported), retained verbatim.
	Extra map[string]any
}

// Session is the in-memory record of the currently authenticated principal.
// Optional fields are sanitized: empty string, never the literal "undefined".
type Session struct {
	Token     string
	UserID    string
	Role      Role
	Email     string
	FirstName string
	LastName  string
	UserType  string
	Extra     map[string]any
}

// ProfileStatus is the outcome of a profile-completeness check.
type ProfileStatus int

const (
	// ProfileUnknown is the zero value: the check failed or never ran.
	ProfileUnknown ProfileStatus = iota
	ProfileComplete
	ProfileIncomplete
)

// NeedsOnboarding collapses Unknown into Incomplete at the policy boundary:
// every failure mode forces onboarding rather than granting access.
func (s ProfileStatus) NeedsOnboarding() bool { return s != ProfileComplete }

func (s ProfileStatus) String() string {
	switch s {
	case ProfileComplete:
		return "complete"
	case ProfileIncomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// Application routes the controller navigates to.
const (
	RouteRoot               = "/"
	RouteLogin              = "/login"
	RouteInternDetails      = "/intern-details"
	RouteAdmin              = "/admin"
	RouteRecruiterDashboard = "/recruiter-dashboard"
	RouteInternDashboard    = "/intern-dashboard"
	RouteJobSeekerDashboard = "/jobseeker-dashboard"
)

// UserData is the identity payload passed as navigation state to the intern
// onboarding route.
type UserData struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BulkImported bool   `json:"bulkImported"`
}

// RouteState is the state object attached to a navigation.
type RouteState struct {
	UserData UserData `json:"userData"`
}

// UndefinedLiteral is the corrupt value earlier buggy writes left in the
// persisted store. It must never be read back as a real value.
const UndefinedLiteral = "undefined"

// Sanitize replaces absent or corrupt optional values with the empty string.
func Sanitize(v string) string {
	if v == UndefinedLiteral {
		return ""
	}
	return v
}

// Truthy reports whether an extra-field value counts as set under the loose
// semantics the web client historically applied: false, nil, zero numbers,
// empty strings, "false", "0" and "undefined" are all falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0" && t != UndefinedLiteral
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
