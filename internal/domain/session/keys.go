package session

// Persisted store key schema. Values are strings only. Several fields are
// written under two names because older code paths read either one.
const (
	KeyToken    = "token"
	KeyRole     = "role"
	KeyUserID   = "userId"
	KeyUserType = "userType"

	KeyUserEmail     = "userEmail"
	KeyEmail         = "email"
	KeyUserFirstName = "userFirstName"
	KeyFirstName     = "firstName"
	KeyUserLastName  = "userLastName"
	KeyLastName      = "lastName"

	// Ephemeral store: one-shot route marker set by the route guard.
	KeyIntendedDestination = "intendedDestination"
)

// Legacy keys never written by current login logic but still cleared on
// logout for cross-compatibility with older deployments.
const (
	KeyLegacyUser        = "user"
	KeyLegacyAuthToken   = "authToken"
	KeyLegacyUserRole    = "userRole"
	KeyLegacyCurrentUser = "currentUser"
	KeyLegacyUserData    = "userData"
)

// IdentityKeys is the cleanup set scanned at boot for stray "undefined"
// literals.
func IdentityKeys() []string {
	return []string{
		KeyToken, KeyRole, KeyUserID, KeyUserType,
		KeyUserEmail, KeyEmail,
		KeyUserFirstName, KeyFirstName,
		KeyUserLastName, KeyLastName,
	}
}

// LogoutKeys is the full enumerated set removed on logout.
func LogoutKeys() []string {
	return append(IdentityKeys(),
		KeyLegacyUser, KeyLegacyAuthToken, KeyLegacyUserRole,
		KeyLegacyCurrentUser, KeyLegacyUserData,
	)
}
