package domain

// Role enumerates the three kinds of portal accounts.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleClient  Role = "client"
	RoleSupport Role = "support"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleSupport:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to Incubtek staff.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSupport
}

// User is a portal account. Staff accounts belong to the provider company.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	CompanyID    string
	PasswordHash string
}

// HasCredential reports whether the user is able to log in.
func (u User) HasCredential() bool {
	return u.PasswordHash != ""
}

// UserPatch carries the admin-editable user fields. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}
