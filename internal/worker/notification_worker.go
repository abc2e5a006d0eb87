package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/mail"
	"github.com/spec-kit/incubtek-portal/internal/observability"
	"github.com/spec-kit/incubtek-portal/internal/service"
)

// DeliveryWorker hands queued notifications to a mailer, one at a time.
// Failed deliveries are logged and dropped.
type DeliveryWorker struct {
	queue   chan domain.Notification
	mailer  mail.Mailer
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewDeliveryWorker creates a worker with a queue of the given capacity.
func NewDeliveryWorker(mailer mail.Mailer, size int, logger *zap.Logger, metrics *observability.Metrics) *DeliveryWorker {
	if size <= 0 {
		size = 1
	}
	return &DeliveryWorker{
		queue:   make(chan domain.Notification, size),
		mailer:  mailer,
		logger:  logger,
		metrics: metrics,
	}
}

// Enqueue queues n without blocking. It reports false when the queue is full.
func (w *DeliveryWorker) Enqueue(n domain.Notification) bool {
	select {
	case w.queue <- n:
		return true
	default:
		w.metrics.RecordDropped()
		w.logger.Warn("notification queue full; dropping", zap.String("notification_id", n.ID), zap.String("to", n.To))
		return false
	}
}

// Run delivers queued notifications until ctx is cancelled, then flushes
// whatever is still buffered.
func (w *DeliveryWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush()
			return
		case n := <-w.queue:
			w.deliver(ctx, n)
		}
	}
}

func (w *DeliveryWorker) flush() {
	for {
		select {
		case n := <-w.queue:
			w.deliver(context.Background(), n)
		default:
			return
		}
	}
}

func (w *DeliveryWorker) deliver(ctx context.Context, n domain.Notification) {
	if err := w.mailer.Send(ctx, n); err != nil {
		w.metrics.RecordDelivery(w.mailer.Name(), false)
		w.logger.Error("notification delivery failed",
			zap.String("notification_id", n.ID),
			zap.String("sink", w.mailer.Name()),
			zap.Error(err),
		)
		return
	}
	w.metrics.RecordDelivery(w.mailer.Name(), true)
}

// StartNotificationWorker registers notification handlers and starts the
// delivery loop. The returned channel is closed once the loop has stopped.
func StartNotificationWorker(ctx context.Context, notificationService *service.NotificationService, w *DeliveryWorker) <-chan struct{} {
	done := make(chan struct{})
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	if w == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	return done
}
