package domain

import "time"

// Notification is a simulated outbound email. It is never mutated once derived.
type Notification struct {
	ID        string
	To        string
	CC        []string
	Subject   string
	Body      string
	Timestamp time.Time
}
