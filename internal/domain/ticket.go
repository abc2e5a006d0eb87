package domain

import "time"

// TicketStatus enumerates helpdesk states. No transition order is enforced.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "Nouveau"
	TicketStatusInProgress TicketStatus = "En cours"
	TicketStatusPending    TicketStatus = "En attente"
	TicketStatusResolved   TicketStatus = "Résolu"
	TicketStatusClosed     TicketStatus = "Fermé"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the ticket still needs work from the support team.
func (s TicketStatus) IsOpen() bool {
	return s == TicketStatusNew || s == TicketStatusInProgress
}

// TicketUrgency enumerates how quickly the requester needs an answer.
type TicketUrgency string

const (
	TicketUrgencyLow    TicketUrgency = "Faible"
	TicketUrgencyMedium TicketUrgency = "Moyenne"
	TicketUrgencyHigh   TicketUrgency = "Haute"
)

// Valid reports whether u is a known urgency.
func (u TicketUrgency) Valid() bool {
	switch u {
	case TicketUrgencyLow, TicketUrgencyMedium, TicketUrgencyHigh:
		return true
	}
	return false
}

// TicketType separates incidents from service requests.
type TicketType string

const (
	TicketTypeIncident TicketType = "Incident"
	TicketTypeRequest  TicketType = "Demande"
)

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	return t == TicketTypeIncident || t == TicketTypeRequest
}

// Ticket is the aggregate for support requests. Messages are in posting order.
type Ticket struct {
	ID          string
	Type        TicketType
	Title       string
	Description string
	Status      TicketStatus
	Urgency     TicketUrgency
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RequesterID string
	CompanyID   string
	ContractID  *string
	AssigneeID  *string
	Messages    []TicketMessage
}

// TicketInput is what a client submits when opening a ticket.
type TicketInput struct {
	Type        TicketType
	Title       string
	Description string
	Urgency     TicketUrgency
	RequesterID string
	CompanyID   string
	ContractID  *string
}
