package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pablopalop/SyEI/internal/models"
	"gorm.io/gorm"
)

// RecordChange appends an audit log row describing a mutation to any
// table. Pass the caller's transaction handle so the entry commits or
// rolls back with the mutation it describes. oldValues/newValues may be
// nil (INSERT has no before image, DELETE no after image); anything else
// is marshaled into the JSON snapshot columns. actorID is nil for system
// mutations.
func RecordChange(tx *gorm.DB, tableName string, recordID uuid.UUID, action models.AuditAction, oldValues, newValues interface{}, actorID *uuid.UUID) error {
	entry := models.AuditLog{
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		UserID:    actorID,
	}

	if oldValues != nil {
		raw, err := json.Marshal(oldValues)
		if err != nil {
			return fmt.Errorf("failed to marshal old values: %w", err)
		}
		entry.OldValues.JSON = raw
	}
	if newValues != nil {
		raw, err := json.Marshal(newValues)
		if err != nil {
			return fmt.Errorf("failed to marshal new values: %w", err)
		}
		entry.NewValues.JSON = raw
	}

	return tx.Create(&entry).Error
}
