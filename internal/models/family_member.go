package models

import (
	"github.com/google/uuid"
)

// FamilyMember represents the 'family_members' table: a join entity
// granting a User viewing access to a Patient, labeled with the family
// relationship ("spouse", "parent", ...). A user can be linked to a given
// patient at most once.
type FamilyMember struct {
	Model
	UserID       uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:unique_user_patient" json:"user_id"`
	PatientID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:unique_user_patient" json:"patient_id"`
	Relationship string    `gorm:"size:50;not null" json:"relationship"`

	User    User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for FamilyMember
func (FamilyMember) TableName() string {
	return "family_members"
}
