package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents the 'medical_records' table: a clinical entry
// authored by a specialist for a patient. Immutable by convention once
// written. AttachedFiles holds arbitrary attachment metadata as a JSON
// document with no enforced sub-schema.
type MedicalRecord struct {
	Model
	PatientID     uuid.UUID `gorm:"type:char(36);not null;index" json:"patient_id"`
	SpecialistID  uuid.UUID `gorm:"type:char(36);not null;index" json:"specialist_id"`
	RecordDate    time.Time `gorm:"not null;autoCreateTime" json:"record_date"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment     string    `gorm:"type:text" json:"treatment,omitempty"`
	ProgressNotes string    `gorm:"type:text" json:"progress_notes,omitempty"`
	AttachedFiles JSON      `gorm:"column:attached_files_json" json:"attached_files_json,omitempty"`

	Patient    Patient    `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Specialist Specialist `gorm:"foreignKey:SpecialistID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for MedicalRecord
func (MedicalRecord) TableName() string {
	return "medical_records"
}
