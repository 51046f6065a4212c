package postgres

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditRepository appends audit records to the logs table.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Append inserts one log row.
func (repo *auditRepository) Append(ctx context.Context, record *entity.AuditRecord) error {
	details := datatypes.JSONMap(record.Details)
	if details == nil {
		details = datatypes.JSONMap{}
	}

	logM := &model.AuditLogModel{
		Timestamp: record.Timestamp.UTC(),
		UserID:    record.UserID,
		Action:    record.Action,
		Details:   details,
	}
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to append audit record")
	}

	return nil
}
