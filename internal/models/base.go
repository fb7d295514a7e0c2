package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the embedded base for every audited entity: a random UUID
// primary key assigned on insert, create/update timestamps maintained by
// GORM, and nullable created_by/updated_by columns pointing at users.id.
//
// The audit columns are plain foreign-key values, not association edges.
// Resolving them to a User is an explicit lookup by the caller.
type Model struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy *uuid.UUID `gorm:"type:char(36)" json:"created_by,omitempty"`
	UpdatedBy *uuid.UUID `gorm:"type:char(36)" json:"updated_by,omitempty"`
}

// BeforeCreate assigns the primary key when the caller did not supply one.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
