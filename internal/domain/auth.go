package domain

import "time"

// Session describes an issued portal session token.
type Session struct {
	Token     string
	UserID    string
	Role      Role
	ExpiresAt time.Time
}
