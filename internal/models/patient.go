package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents the 'patients' table: the 1:1 sub-profile extending a
// User with demographic and medical-history fields.
type Patient struct {
	Model
	UserID               uuid.UUID `gorm:"type:char(36);uniqueIndex;not null" json:"user_id"`
	DateOfBirth          time.Time `gorm:"not null" json:"date_of_birth"`
	Address              string    `gorm:"type:text" json:"address,omitempty"`
	EmergencyPhone       string    `gorm:"size:20" json:"emergency_phone,omitempty"`
	EmergencyContactName string    `gorm:"size:200" json:"emergency_contact_name,omitempty"`
	BaseMedicalHistory   string    `gorm:"type:text" json:"base_medical_history,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Patient
func (Patient) TableName() string {
	return "patients"
}
