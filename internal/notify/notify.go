// Package notify delivers short messages (one-time codes) to users.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a message addressed to a user. Any error means the
// message was not delivered.
type Sender interface {
	Send(ctx context.Context, userID, title, body string) error
}

// LogSender writes messages to the log instead of delivering them.
// It is selected when no SNS topic is configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a sender for local development.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, userID, title, body string) error {
	s.logger.Info("notification",
		zap.String("component", "notify"),
		zap.String("user_id", userID),
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}
