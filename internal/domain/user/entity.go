package user

// Role is the closed set of access roles carried in the access token.
type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, including settings and offices
	RoleManager  Role = "manager"  // Rosters shifts, approves time-off, runs payroll
	RoleEmployee Role = "employee" // Clocks in/out and manages own requests
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}

// ParseRole returns the Role named by s, or false when s is not a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// Identity is the authenticated caller as read from the access token.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       Role
}

// Can reports whether the caller holds permission.
func (i Identity) Can(permission Permission) bool {
	return HasPermission(i.Role, permission)
}

// Permissions lists what the caller's role grants.
func (i Identity) Permissions() []Permission {
	return RolePermissions[i.Role]
}
