package service

import (
	"context"
	"time"

	"supermall/internal/domain/entity"
)

// SessionEvent is broadcast whenever a user signs in or out
type SessionEvent struct {
	RequestID  string                  `json:"request_id,omitempty"` // For distributed tracing
	Type       entity.SessionEventType `json:"type"`
	UserID     string                  `json:"user_id"`
	Email      string                  `json:"email,omitempty"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// SessionEventPublisher defines the interface for publishing session transitions to a message queue
type SessionEventPublisher interface {
	// PublishSessionEvent publishes a session event to subscribers
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
