package impl

import (
	"context"
	"maps"
	"time"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/service"
)

// auditService stamps audit records and hands them to the write-behind sink.
type auditService struct {
	sink service.AuditSink
	now  func() time.Time
}

// NewAuditService creates the audit logger used by every use case
func NewAuditService(sink service.AuditSink) service.AuditLogger {
	return &auditService{
		sink: sink,
		now:  time.Now,
	}
}

// LogAction records an action for the session's user, or "anon" without one.
func (s *auditService) LogAction(ctx context.Context, session *entity.Session, action string, details map[string]any) {
	userID := session.UID()
	if userID == "" {
		userID = entity.AnonymousUserID
	}

	record := &entity.AuditRecord{
		Timestamp: s.now().UTC(),
		UserID:    userID,
		Action:    action,
		Details:   maps.Clone(details),
	}
	if record.Details == nil {
		record.Details = map[string]any{}
	}

	s.sink.Submit(ctx, record)
}

// auditFailure records action with the error message added to details.
func auditFailure(ctx context.Context, audit service.AuditLogger, session *entity.Session, action string, err error, details map[string]any) {
	merged := make(map[string]any, len(details)+1)
	maps.Copy(merged, details)
	merged["error"] = errorMessage(err)

	audit.LogAction(ctx, session, action, merged)
}
