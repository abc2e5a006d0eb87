package dto

import "time"

// NotificationResponse represents a derived email record.
type NotificationResponse struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	CC        []string  `json:"cc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
