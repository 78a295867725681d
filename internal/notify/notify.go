// Package notify delivers user-facing notifications for alarms and wellness
// reminders.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier raises a notification with a title and message. Implementations
// must not block the caller; delivery failure is ignored and never prevents
// the triggering state transition.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// LogNotifier writes notifications to the structured log. It stands in for
// the desktop/audio delivery layer, which lives outside this service.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the notification.
func (n *LogNotifier) Notify(_ context.Context, title, message string) {
	n.logger.Info("notification",
		zap.String("title", title),
		zap.String("message", message),
	)
}

// Func adapts a function to the Notifier interface. Handy in tests.
type Func func(ctx context.Context, title, message string)

// Notify calls f.
func (f Func) Notify(ctx context.Context, title, message string) {
	f(ctx, title, message)
}
