package enums

import "fmt"

// AdminRole distinguishes panel operators from super admins.
type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "SUPER_ADMIN"
	AdminRoleAdmin      AdminRole = "ADMIN"
)

var validAdminRoles = []AdminRole{
	AdminRoleSuperAdmin,
	AdminRoleAdmin,
}

// String returns the literal string for the role.
func (r AdminRole) String() string {
	return string(r)
}

// IsValid reports whether the role is known.
func (r AdminRole) IsValid() bool {
	for _, candidate := range validAdminRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseAdminRole converts raw input into an AdminRole.
func ParseAdminRole(value string) (AdminRole, error) {
	for _, candidate := range validAdminRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid admin role %q", value)
}
