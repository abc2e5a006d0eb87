package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// NotificationOutboxRepository journals delivered notifications.
type NotificationOutboxRepository interface {
	Append(ctx context.Context, sender string, notification domain.Notification) error
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type notificationOutboxRepository struct {
	db execer
}

// NewNotificationOutboxRepository instantiates repository.
func NewNotificationOutboxRepository(pool *pgxpool.Pool) NotificationOutboxRepository {
	return &notificationOutboxRepository{db: pool}
}

// Append records a notification. Replaying the same id is ignored.
func (r *notificationOutboxRepository) Append(ctx context.Context, sender string, n domain.Notification) error {
	const query = `
        INSERT INTO notification_outbox (id, sender, recipient, cc, subject, body, derived_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (id) DO NOTHING`
	cc := n.CC
	if cc == nil {
		cc = []string{}
	}
	if _, err := r.db.Exec(ctx, query, n.ID, sender, n.To, cc, n.Subject, n.Body, n.Timestamp); err != nil {
		return fmt.Errorf("append notification %s: %w", n.ID, err)
	}
	return nil
}
