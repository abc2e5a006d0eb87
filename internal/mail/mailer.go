// Package mail delivers derived notifications to simulated sinks. Nothing
// here talks SMTP: a log line, an optional webhook and an optional database
// journal are the only destinations.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/repository"
)

// Mailer delivers one notification.
type Mailer interface {
	Send(ctx context.Context, n domain.Notification) error
	Name() string
}

// LogMailer writes each notification as a structured log entry.
type LogMailer struct {
	from   string
	logger *zap.Logger
}

func NewLogMailer(from string, logger *zap.Logger) *LogMailer {
	return &LogMailer{from: from, logger: logger}
}

func (m *LogMailer) Name() string { return "log" }

func (m *LogMailer) Send(_ context.Context, n domain.Notification) error {
	m.logger.Info("notification sent",
		zap.String("notification_id", n.ID),
		zap.String("from", m.from),
		zap.String("to", n.To),
		zap.Strings("cc", n.CC),
		zap.String("subject", n.Subject),
		zap.Int("body_length", len(n.Body)),
	)
	return nil
}

// OutboxMailer journals notifications in Postgres.
type OutboxMailer struct {
	from string
	repo repository.NotificationOutboxRepository
}

func NewOutboxMailer(from string, repo repository.NotificationOutboxRepository) *OutboxMailer {
	return &OutboxMailer{from: from, repo: repo}
}

func (m *OutboxMailer) Name() string { return "outbox" }

func (m *OutboxMailer) Send(ctx context.Context, n domain.Notification) error {
	return m.repo.Append(ctx, m.from, n)
}

// MultiMailer fans a notification out to every sink. All sinks are tried;
// failures are joined.
type MultiMailer struct {
	mailers []Mailer
}

func NewMultiMailer(mailers ...Mailer) *MultiMailer {
	return &MultiMailer{mailers: mailers}
}

func (m *MultiMailer) Name() string {
	names := make([]string, 0, len(m.mailers))
	for _, mailer := range m.mailers {
		names = append(names, mailer.Name())
	}
	return strings.Join(names, "+")
}

func (m *MultiMailer) Send(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, mailer := range m.mailers {
		if err := mailer.Send(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", mailer.Name(), err))
		}
	}
	return errors.Join(errs...)
}
