package repository

import (
	"context"

	"supermall/internal/domain/entity"
)

// AuditRepository appends audit records. There is no read path.
type AuditRepository interface {
	Append(ctx context.Context, record *entity.AuditRecord) error
}
