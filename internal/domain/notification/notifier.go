package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/events"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/cache"
)

// Severity of a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier surfaces transient feedback to the dashboard. Calls are
// fire-and-forget: a lost toast never fails the operation that raised it.
type Notifier interface {
	Success(ctx context.Context, userID uuid.UUID, message string)
	Error(ctx context.Context, userID uuid.UUID, message string)
}

// dashboardNotifier publishes toasts over the dashboard event channel and
// mirrors them into the structured log.
type dashboardNotifier struct {
	redis  *cache.RedisClient
	logger *logrus.Logger
}

// NewDashboardNotifier creates a notifier backed by the dashboard event
// channel. redis may be nil, in which case toasts are log-only.
func NewDashboardNotifier(redis *cache.RedisClient, logger *logrus.Logger) Notifier {
	return &dashboardNotifier{redis: redis, logger: logger}
}

func (n *dashboardNotifier) Success(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, SeveritySuccess, message)
}

func (n *dashboardNotifier) Error(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, SeverityError, message)
}

func (n *dashboardNotifier) publish(ctx context.Context, userID uuid.UUID, severity Severity, message string) {
	n.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"severity": severity,
	}).Info(message)

	if n.redis == nil {
		return
	}
	event := &events.DashboardEvent{
		EventType: events.DashboardEventToast,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Details: map[string]interface{}{
			"severity": severity,
			"message":  message,
		},
	}
	if err := n.redis.PublishDashboardEvent(ctx, event); err != nil {
		n.logger.WithError(err).Warn("failed to publish toast")
	}
}
