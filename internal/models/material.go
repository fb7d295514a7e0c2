package models

import (
	"time"

	"github.com/google/uuid"
)

// EducationalMaterial represents the 'educational_materials' table:
// published content items, optionally attributed to a specialist. The
// attribution is dropped, not the material, when the specialist goes.
type EducationalMaterial struct {
	Model
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	ContentURL   string     `gorm:"type:text;not null" json:"content_url"`
	MaterialType string     `gorm:"size:50;not null" json:"material_type"`
	PublishDate  time.Time  `gorm:"autoCreateTime" json:"publish_date"`
	SpecialistID *uuid.UUID `gorm:"type:char(36);index" json:"specialist_id,omitempty"`

	Specialist *Specialist `gorm:"foreignKey:SpecialistID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName overrides the table name for EducationalMaterial
func (EducationalMaterial) TableName() string {
	return "educational_materials"
}

// PatientMaterialAssignment represents the 'patient_material_assignments'
// table: the join assigning one material to one patient, at most once per
// pair.
type PatientMaterialAssignment struct {
	Model
	PatientID          uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:unique_patient_material" json:"patient_id"`
	MaterialID         uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:unique_patient_material" json:"material_id"`
	AssignmentDate     time.Time `gorm:"not null;autoCreateTime" json:"assignment_date"`
	SpecialistComments string    `gorm:"type:text" json:"specialist_comments,omitempty"`

	Patient  Patient             `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Material EducationalMaterial `gorm:"foreignKey:MaterialID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for PatientMaterialAssignment
func (PatientMaterialAssignment) TableName() string {
	return "patient_material_assignments"
}
