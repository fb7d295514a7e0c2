package models

import (
	"time"
)

// UserRole is the closed set of account roles. The same set is enforced at
// the storage layer by the valid_user_role check constraint.
type UserRole string

const (
	RoleAdmin        UserRole = "Admin"
	RoleSpecialist   UserRole = "Specialist"
	RolePatient      UserRole = "Patient"
	RoleFamilyMember UserRole = "FamilyMember"
)

// User represents the 'users' table: base accounts with role-based access.
// Each user owns at most one Specialist, Patient, or FamilyMember
// sub-profile depending on its role.
type User struct {
	Model
	FirstName        string    `gorm:"size:100;not null" json:"first_name"`
	LastName         string    `gorm:"size:100;not null" json:"last_name"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	Role             UserRole  `gorm:"size:20;not null;check:valid_user_role,role IN ('Admin','Specialist','Patient','FamilyMember')" json:"role"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
