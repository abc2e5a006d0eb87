package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// TicketService coordinates helpdesk workflows.
type TicketService struct {
	publisher
	store *state.Store
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	Store      *state.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Type        domain.TicketType
	Title       string
	Description string
	Urgency     domain.TicketUrgency
	ContractID  *string
}

// MessageInput is a reply posted on a ticket thread.
type MessageInput struct {
	Content    string
	Attachment *domain.Attachment
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		publisher: publisher{dispatcher: deps.Dispatcher, logger: nopLogger(deps.Logger)},
		store:     deps.Store,
	}
}

// CreateTicket opens a ticket on behalf of a client of requester's company.
func (s *TicketService) CreateTicket(ctx context.Context, requester domain.User, input TicketCreateInput) domain.Ticket {
	ticket := s.store.AddTicket(domain.TicketInput{
		Type:        input.Type,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Urgency:     input.Urgency,
		RequesterID: requester.ID,
		CompanyID:   requester.CompanyID,
		ContractID:  input.ContractID,
	})
	fields := []zap.Field{zap.String("ticket_id", ticket.ID), zap.String("company_id", ticket.CompanyID)}
	if ticket.AssigneeID != nil {
		fields = append(fields, zap.String("assignee_id", *ticket.AssigneeID))
	}
	s.logger.Info("ticket created", fields...)

	s.publish(ctx, events.New(events.EventTicketCreated, ticket.ID, userActor(requester), ticket.CreatedAt,
		events.TicketCreatedPayload{Ticket: ticket}))
	return ticket
}

// ListCompanyTickets returns the tickets of a company, most recently updated first.
func (s *TicketService) ListCompanyTickets(companyID string) []domain.Ticket {
	tickets := state.FilterTickets(s.store.Snapshot().Tickets, state.TicketFilter{CompanyID: &companyID})
	return state.SortTicketsByUpdatedDesc(tickets)
}

// GetTicketForUser returns a ticket the user may see. Clients only see the
// tickets of their own company.
func (s *TicketService) GetTicketForUser(user domain.User, ticketID string) (domain.Ticket, bool) {
	ticket, ok := s.store.Ticket(ticketID)
	if !ok || !canSee(user, ticket) {
		return domain.Ticket{}, false
	}
	return ticket, true
}

// ListStaffTickets returns the filtered helpdesk, newest first.
func (s *TicketService) ListStaffTickets(filter state.TicketFilter) []domain.Ticket {
	return state.SortTicketsByCreatedDesc(state.FilterTickets(s.store.Snapshot().Tickets, filter))
}

// AssignableUsers lists the staff a ticket can be assigned to.
func (s *TicketService) AssignableUsers() []domain.User {
	return state.AssignableUsers(s.store.Snapshot().Users)
}

// AddMessage appends a reply signed with the author's name. A client reply
// reopens the ticket as "En cours"; a staff reply notifies the requester.
func (s *TicketService) AddMessage(ctx context.Context, author domain.User, ticketID string, input MessageInput) (domain.Ticket, bool) {
	if current, ok := s.store.Ticket(ticketID); !ok || !canSee(author, current) {
		return domain.Ticket{}, false
	}

	msg := domain.TicketMessage{
		Author:     author.Name,
		Content:    strings.TrimSpace(input.Content),
		Timestamp:  s.store.Now(),
		Attachment: input.Attachment,
	}
	ticket, ok := s.store.AddTicketMessage(ticketID, msg, author.Role)
	if !ok {
		return domain.Ticket{}, false
	}
	msg = ticket.Messages[len(ticket.Messages)-1]
	s.logger.Info("ticket message added",
		zap.String("ticket_id", ticketID),
		zap.String("author_role", string(author.Role)),
		zap.Bool("attachment", msg.Attachment != nil),
	)

	s.publish(ctx, events.New(events.EventTicketMessageAdded, ticketID, userActor(author), msg.Timestamp,
		events.TicketMessageAddedPayload{Ticket: ticket, Message: msg}))
	return ticket, true
}

// UpdateStatus sets any status; no transition order is enforced.
func (s *TicketService) UpdateStatus(ctx context.Context, actor domain.User, ticketID string, status domain.TicketStatus) (domain.Ticket, bool) {
	current, ok := s.store.Ticket(ticketID)
	if !ok {
		return domain.Ticket{}, false
	}
	ticket, ok := s.store.UpdateTicketStatus(ticketID, status)
	if !ok {
		return domain.Ticket{}, false
	}
	s.publish(ctx, events.New(events.EventTicketStatusChanged, ticketID, userActor(actor), ticket.UpdatedAt,
		events.TicketStatusChangedPayload{OldStatus: current.Status, NewStatus: ticket.Status}))
	return ticket, true
}

// Assign sets the assignee of a ticket; an empty id unassigns it.
func (s *TicketService) Assign(ctx context.Context, actor domain.User, ticketID, assigneeID string) (domain.Ticket, bool) {
	current, ok := s.store.Ticket(ticketID)
	if !ok {
		return domain.Ticket{}, false
	}
	ticket, ok := s.store.AssignTicket(ticketID, assigneeID)
	if !ok {
		return domain.Ticket{}, false
	}
	s.publish(ctx, events.New(events.EventTicketAssigned, ticketID, userActor(actor), ticket.UpdatedAt,
		events.TicketAssignedPayload{OldAssigneeID: current.AssigneeID, AssigneeID: ticket.AssigneeID}))
	return ticket, true
}

// IsAssignable reports whether userID may be set as a ticket assignee.
func (s *TicketService) IsAssignable(userID string) bool {
	for _, u := range s.AssignableUsers() {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func canSee(user domain.User, ticket domain.Ticket) bool {
	if user.Role.IsStaff() {
		return true
	}
	return ticket.CompanyID == user.CompanyID
}
