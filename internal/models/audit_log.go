package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditAction is the closed set of mutation kinds recorded in the audit
// log, mirrored by the valid_audit_action check constraint.
type AuditAction string

const (
	ActionInsert AuditAction = "INSERT"
	ActionUpdate AuditAction = "UPDATE"
	ActionDelete AuditAction = "DELETE"
)

// AuditLog represents the 'audit_logs' table: an append-only record of a
// mutation to any table. Before/after row snapshots are stored as JSON
// documents; the acting user is nullable so system mutations can be
// recorded too.
type AuditLog struct {
	ID        uuid.UUID   `gorm:"type:char(36);primaryKey" json:"id"`
	TableName string      `gorm:"size:100;not null" json:"table_name"`
	RecordID  uuid.UUID   `gorm:"type:char(36);not null" json:"record_id"`
	Action    AuditAction `gorm:"size:20;not null;check:valid_audit_action,action IN ('INSERT','UPDATE','DELETE')" json:"action"`
	OldValues JSON        `json:"old_values,omitempty"`
	NewValues JSON        `json:"new_values,omitempty"`
	UserID    *uuid.UUID  `gorm:"type:char(36)" json:"user_id,omitempty"`
	Timestamp time.Time   `gorm:"autoCreateTime" json:"timestamp"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// BeforeCreate assigns the primary key when the caller did not supply one.
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
