package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
)

// publisher is embedded by services that emit domain events.
type publisher struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// publish runs subscribers synchronously. Subscriber failures never undo
// the mutation that triggered them; they are logged.
func (p publisher) publish(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	if err := p.dispatcher.Publish(ctx, event); err != nil {
		p.logger.Error("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("subject_id", event.SubjectID),
			zap.Error(err),
		)
	}
}

func userActor(user domain.User) events.Actor {
	return events.Actor{UserID: user.ID, Role: user.Role}
}

func anonymousActor() events.Actor {
	return events.Actor{}
}

func nopLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
