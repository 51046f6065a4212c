package firestore

import (
	"context"

	"supermall/internal/domain/constants"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"

	gfs "cloud.google.com/go/firestore"
)

// auditRepository appends audit records to the logs collection.
type auditRepository struct {
	client *gfs.Client
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(client *gfs.Client) repository.AuditRepository {
	return &auditRepository{client: client}
}

// Append adds one log document.
func (repo *auditRepository) Append(ctx context.Context, record *entity.AuditRecord) error {
	if _, _, err := repo.client.Collection(constants.CollectionLogs).Add(ctx, fromAuditDomain(record)); err != nil {
		return mapError(err, nil, "failed to append audit record")
	}

	return nil
}
