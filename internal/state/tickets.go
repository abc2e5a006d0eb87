package state

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// UnknownRequesterName authors the seed message when the requester cannot be resolved.
const UnknownRequesterName = "Utilisateur inconnu"

// UpdateTicketStatus sets the status of the matching ticket and refreshes UpdatedAt.
func UpdateTicketStatus(tickets []domain.Ticket, ticketID string, status domain.TicketStatus, now time.Time) []domain.Ticket {
	return mapTicket(tickets, ticketID, func(t *domain.Ticket) {
		t.Status = status
		t.UpdatedAt = now
	})
}

// AssignTicket sets the assignee of the matching ticket; an empty id clears it.
func AssignTicket(tickets []domain.Ticket, ticketID, assigneeID string, now time.Time) []domain.Ticket {
	return mapTicket(tickets, ticketID, func(t *domain.Ticket) {
		if assigneeID == "" {
			t.AssigneeID = nil
		} else {
			id := assigneeID
			t.AssigneeID = &id
		}
		t.UpdatedAt = now
	})
}

// AddTicketMessage appends a message to the matching ticket. A message posted
// by a client always moves the ticket back to "En cours".
func AddTicketMessage(tickets []domain.Ticket, ticketID string, msg domain.TicketMessage, actor domain.Role, now time.Time) []domain.Ticket {
	return mapTicket(tickets, ticketID, func(t *domain.Ticket) {
		messages := make([]domain.TicketMessage, 0, len(t.Messages)+1)
		messages = append(messages, t.Messages...)
		t.Messages = append(messages, msg)
		t.UpdatedAt = now
		if actor == domain.RoleClient {
			t.Status = domain.TicketStatusInProgress
		}
	})
}

// NewTicket builds a ticket from client input. The assignee is picked among
// the current support users; it stays nil when there are none.
func NewTicket(input domain.TicketInput, users []domain.User, pick Picker, id string, now time.Time) domain.Ticket {
	requesterName := UnknownRequesterName
	if requester, ok := FindUser(users, input.RequesterID); ok {
		requesterName = requester.Name
	}

	var assigneeID *string
	if support := UsersByRole(users, domain.RoleSupport); len(support) > 0 {
		chosen := support[pick(len(support))].ID
		assigneeID = &chosen
	}

	return domain.Ticket{
		ID:          id,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TicketStatusNew,
		Urgency:     input.Urgency,
		CreatedAt:   now,
		UpdatedAt:   now,
		RequesterID: input.RequesterID,
		CompanyID:   input.CompanyID,
		ContractID:  input.ContractID,
		AssigneeID:  assigneeID,
		Messages: []domain.TicketMessage{{
			Author:    requesterName,
			Content:   input.Description,
			Timestamp: now,
		}},
	}
}

// AddTicket prepends a ticket.
func AddTicket(tickets []domain.Ticket, ticket domain.Ticket) []domain.Ticket {
	next := make([]domain.Ticket, 0, len(tickets)+1)
	next = append(next, ticket)
	return append(next, tickets...)
}

func mapTicket(tickets []domain.Ticket, ticketID string, apply func(*domain.Ticket)) []domain.Ticket {
	next := make([]domain.Ticket, len(tickets))
	copy(next, tickets)
	for i := range next {
		if next[i].ID == ticketID {
			apply(&next[i])
		}
	}
	return next
}
