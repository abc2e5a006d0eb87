package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/repository"
)

// TicketHistoryService journals status and assignee changes. Without a
// repository it records nothing and lists an empty history.
type TicketHistoryService struct {
	repo       repository.TicketHistoryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketHistoryDependencies wires the history journal.
type TicketHistoryDependencies struct {
	Repo       repository.TicketHistoryRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketHistoryService constructs the service.
func NewTicketHistoryService(deps TicketHistoryDependencies) *TicketHistoryService {
	return &TicketHistoryService{
		repo:       deps.Repo,
		dispatcher: deps.Dispatcher,
		logger:     nopLogger(deps.Logger),
	}
}

// Enabled reports whether entries are persisted.
func (s *TicketHistoryService) Enabled() bool {
	return s != nil && s.repo != nil
}

// RegisterHandlers subscribes to ticket change events.
func (s *TicketHistoryService) RegisterHandlers() {
	if !s.Enabled() || s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTicketStatusChanged, s.handleStatusChanged)
	s.dispatcher.Subscribe(events.EventTicketAssigned, s.handleAssigned)
}

// List returns the journal of a ticket, oldest first.
func (s *TicketHistoryService) List(ctx context.Context, ticketID string) ([]domain.TicketHistory, error) {
	if !s.Enabled() {
		return []domain.TicketHistory{}, nil
	}
	return s.repo.ListByTicket(ctx, ticketID)
}

func (s *TicketHistoryService) handleStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return unexpectedPayload(event)
	}
	oldValue := string(payload.OldStatus)
	newValue := string(payload.NewStatus)
	return s.record(ctx, event, domain.TicketChangeStatus, &oldValue, &newValue)
}

func (s *TicketHistoryService) handleAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok {
		return unexpectedPayload(event)
	}
	return s.record(ctx, event, domain.TicketChangeAssignee, payload.OldAssigneeID, payload.AssigneeID)
}

func (s *TicketHistoryService) record(ctx context.Context, event events.Event, change domain.TicketChangeType, oldValue, newValue *string) error {
	entry := &domain.TicketHistory{
		TicketID:    event.SubjectID,
		ChangedByID: event.Actor.UserID,
		ChangeType:  change,
		OldValue:    oldValue,
		NewValue:    newValue,
		CreatedAt:   event.Timestamp,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return err
	}
	s.logger.Debug("ticket history recorded",
		zap.String("ticket_id", entry.TicketID),
		zap.String("change", string(change)),
		zap.Int64("history_id", entry.ID),
	)
	return nil
}
