package domain

import "time"

// TicketMessage is one entry of a ticket thread. Author holds the display
// name of whoever posted it, not a user reference.
type TicketMessage struct {
	Author     string
	Content    string
	Timestamp  time.Time
	Attachment *Attachment
}

// Attachment references a single file sent with a message.
type Attachment struct {
	FileName  string
	Reference string
}
