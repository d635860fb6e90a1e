// Package entity contains the core business objects of the project.
package entity

// Role represents the account-wide role of a user.
type Role string

const (
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular user account, the default for new registrations.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
