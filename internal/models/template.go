package models

import (
	"github.com/google/uuid"
)

// Template represents the 'templates' table: reusable document content,
// either owned by one specialist or marked global. Deleting the owning
// specialist nulls the reference instead of deleting the content.
type Template struct {
	Model
	SpecialistID *uuid.UUID `gorm:"type:char(36);index" json:"specialist_id,omitempty"`
	TemplateName string     `gorm:"size:200;not null" json:"template_name"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	TemplateType string     `gorm:"size:50;not null" json:"template_type"`
	IsGlobal     bool       `gorm:"default:false" json:"is_global"`

	Specialist *Specialist `gorm:"foreignKey:SpecialistID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName overrides the table name for Template
func (Template) TableName() string {
	return "templates"
}
