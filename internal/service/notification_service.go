package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/confirmation"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/notification"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// ConfirmationWriter produces the body of the lead confirmation email. It
// never fails; a fallback text is returned instead.
type ConfirmationWriter interface {
	Text(ctx context.Context, lead domain.Lead) string
}

// DeliveryQueue accepts notifications for asynchronous delivery.
type DeliveryQueue interface {
	Enqueue(n domain.Notification) bool
}

// NotificationService turns domain events into notification records. Records
// are stored newest first and handed to the delivery queue.
type NotificationService struct {
	dispatcher events.Dispatcher
	store      *state.Store
	deriver    notification.Deriver
	confirmer  ConfirmationWriter
	queue      DeliveryQueue
	logger     *zap.Logger
}

// NotificationDependencies bundles collaborators for notification service.
type NotificationDependencies struct {
	Dispatcher events.Dispatcher
	Store      *state.Store
	Deriver    notification.Deriver
	Confirmer  ConfirmationWriter
	Queue      DeliveryQueue
	Logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		dispatcher: deps.Dispatcher,
		store:      deps.Store,
		deriver:    deps.Deriver,
		confirmer:  deps.Confirmer,
		queue:      deps.Queue,
		logger:     nopLogger(deps.Logger),
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeadCreated, n.handleLeadCreated)
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleTicketAssigned)
	n.dispatcher.Subscribe(events.EventTicketMessageAdded, n.handleTicketMessageAdded)
}

// List returns the notification log, newest first.
func (n *NotificationService) List() []domain.Notification {
	return n.store.Snapshot().Notifications
}

// Clear empties the notification log.
func (n *NotificationService) Clear() {
	n.store.ClearNotifications()
	n.logger.Info("notifications cleared")
}

// handleLeadCreated runs after the lead is already in the store; the
// confirmation text is generated without holding any lock.
func (n *NotificationService) handleLeadCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LeadCreatedPayload)
	if !ok {
		return unexpectedPayload(event)
	}
	body := confirmation.Fallback
	if n.confirmer != nil {
		body = n.confirmer.Text(ctx, payload.Lead)
	}
	users := n.store.Snapshot().Users
	n.record(event, n.deriver.LeadCreated(payload.Lead, users, body))
	return nil
}

func (n *NotificationService) handleTicketCreated(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return unexpectedPayload(event)
	}
	snap := n.store.Snapshot()
	n.record(event, n.deriver.TicketCreated(payload.Ticket, snap.Users, snap.Companies))
	return nil
}

// handleTicketMessageAdded notifies the requester of staff replies only.
func (n *NotificationService) handleTicketMessageAdded(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketMessageAddedPayload)
	if !ok {
		return unexpectedPayload(event)
	}
	if !event.Actor.Role.IsStaff() {
		return nil
	}
	users := n.store.Snapshot().Users
	n.record(event, n.deriver.TicketReply(payload.Ticket, payload.Message, users))
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("TicketStatusChanged", zap.String("ticket_id", event.SubjectID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketAssigned(_ context.Context, event events.Event) error {
	n.logger.Info("TicketAssigned", zap.String("ticket_id", event.SubjectID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) record(event events.Event, derived []domain.Notification) {
	if len(derived) == 0 {
		return
	}
	n.store.PrependNotifications(derived)
	for _, rec := range derived {
		queued := n.queue == nil || n.queue.Enqueue(rec)
		n.logger.Debug("notification derived",
			zap.String("event_type", string(event.Type)),
			zap.String("subject_id", event.SubjectID),
			zap.String("notification_id", rec.ID),
			zap.String("to", rec.To),
			zap.Bool("queued", queued),
		)
	}
}

func unexpectedPayload(event events.Event) error {
	return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
}
