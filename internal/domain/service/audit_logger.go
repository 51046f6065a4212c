package service

import (
	"context"

	"supermall/internal/domain/entity"
)

// AuditLogger records user and system actions. It never fails its caller.
type AuditLogger interface {
	LogAction(ctx context.Context, session *entity.Session, action string, details map[string]any)
}

// AuditSink persists audit records off the caller's path.
type AuditSink interface {
	// Submit hands a record to the sink. It never blocks on storage and never fails.
	Submit(ctx context.Context, record *entity.AuditRecord)
}
