package sdk

// Decision is the route guard's verdict for a protected screen.
type Decision int

const (
	// Allow lets the screen render.
	Allow Decision = iota
	// RedirectLogin sends the caller to the login entry point.
	RedirectLogin
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "redirect-login"
}

// Authorize is the route guard: a pure decision from token presence. It
// does not wait for identity resolution; screens handle an unresolved
// identity themselves.
func Authorize(hasToken bool) Decision {
	if hasToken {
		return Allow
	}
	return RedirectLogin
}

// Feature names a role-gated area of the application.
type Feature string

const (
	FeatureCustomers      Feature = "customers"
	FeatureAttendances    Feature = "attendances"
	FeatureProfile        Feature = "profile"
	FeatureAdminPanel     Feature = "admin-panel"
	FeatureUserManagement Feature = "user-management"
)

// featureRoles is the single place the role policy lives. Admin areas are
// ADMIN-only: user creation, update and deletion are server-enforced for
// ADMIN, so presenting them to other roles would only offer controls the
// user cannot use.
var featureRoles = map[Feature]map[Role]struct{}{
	FeatureCustomers:      anyRole(),
	FeatureAttendances:    anyRole(),
	FeatureProfile:        anyRole(),
	FeatureAdminPanel:     {RoleAdmin: {}},
	FeatureUserManagement: {RoleAdmin: {}},
}

func anyRole() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAttendant: {},
		RoleSeller:    {},
		RoleAdmin:     {},
	}
}

// CanAccess reports whether the role may use the feature. This is UI
// gating, not a security boundary; the API enforces authorization
// server-side.
func CanAccess(role Role, feature Feature) bool {
	allowed, ok := featureRoles[feature]
	if !ok {
		return false
	}
	_, exists := allowed[role]
	return exists
}
