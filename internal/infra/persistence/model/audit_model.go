package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel mirrors the append-only 'logs' table.
type AuditLogModel struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time         `gorm:"not null;index"`
	UserID    string            `gorm:"type:varchar(128);not null"`
	Action    string            `gorm:"type:varchar(64);not null;index"`
	Details   datatypes.JSONMap `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "logs"
}
