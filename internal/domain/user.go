package domain

// Role of the authenticated caller
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMinister Role = "minister"
)

// User is the caller identity provided by the upstream gateway
type User struct {
	ID   string
	Role Role
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ParseRole converts a header value into a Role; unknown values fall back to RoleMinister
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleMinister
}
