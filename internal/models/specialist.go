package models

import (
	"github.com/google/uuid"
)

// Specialist represents the 'specialists' table: the 1:1 sub-profile
// extending a User with clinical credentials. The unique index on user_id
// enforces the 1:1 shape; deleting the owning User deletes the profile.
type Specialist struct {
	Model
	UserID              uuid.UUID `gorm:"type:char(36);uniqueIndex;not null" json:"user_id"`
	Specialty           string    `gorm:"size:100;not null" json:"specialty"`
	Description         string    `gorm:"type:text" json:"description,omitempty"`
	PhoneNumber         string    `gorm:"size:20" json:"phone_number,omitempty"`
	ProfessionalLicense string    `gorm:"size:100" json:"professional_license,omitempty"`
	Bio                 string    `gorm:"type:text" json:"bio,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Specialist
func (Specialist) TableName() string {
	return "specialists"
}
