// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a staff account can have in the system.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
	// RoleEditor indicates an editor who maintains facility data.
	RoleEditor Role = "editor"
	// RoleMember indicates a general staff member with read access.
	RoleMember Role = "member"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string to a Role, reporting whether it names
// a known role.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
