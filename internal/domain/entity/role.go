package entity

// Role represents the label attached to a user account. It is persisted as
// free-form text; nothing in this core enforces authorization based on it.
type Role string

const (
	// RoleCustomer is the default role for self-registered accounts.
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin is the role of the seeded administrative account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the well-known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
