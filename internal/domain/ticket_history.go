package domain

import "time"

// TicketChangeType identifies which ticket field a history entry tracks.
type TicketChangeType string

const (
	TicketChangeStatus   TicketChangeType = "status"
	TicketChangeAssignee TicketChangeType = "assignee"
)

// TicketHistory is one audited change of a ticket. Nil values mean "none",
// e.g. an unassigned ticket.
type TicketHistory struct {
	ID          int64
	TicketID    string
	ChangedByID string
	ChangeType  TicketChangeType
	OldValue    *string
	NewValue    *string
	CreatedAt   time.Time
}
