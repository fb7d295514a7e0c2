// Package seed inserts the fixed development dataset: one admin, one
// specialist and one patient account, plus the specialist and patient
// sub-profiles. It is deliberately not idempotent; a second run fails on
// the unique email constraint.
package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/pablopalop/SyEI/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// hashPassword produces a salted bcrypt hash safe for at-rest storage.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CreateSampleData populates the sample users and their sub-profiles.
// The users are committed first because the sub-profile rows reference
// user identifiers; the sub-profiles follow in a second transaction.
func CreateSampleData(db *gorm.DB) error {
	adminHash, err := hashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	specialistHash, err := hashPassword("specialist123")
	if err != nil {
		return fmt.Errorf("failed to hash specialist password: %w", err)
	}
	patientHash, err := hashPassword("patient123")
	if err != nil {
		return fmt.Errorf("failed to hash patient password: %w", err)
	}

	adminUser := models.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        "admin@medicalcenter.com",
		PasswordHash: adminHash,
		Role:         models.RoleAdmin,
	}
	specialistUser := models.User{
		FirstName:    "Dr. Sarah",
		LastName:     "Johnson",
		Email:        "sarah.johnson@medicalcenter.com",
		PasswordHash: specialistHash,
		Role:         models.RoleSpecialist,
	}
	patientUser := models.User{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@email.com",
		PasswordHash: patientHash,
		Role:         models.RolePatient,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, u := range []*models.User{&adminUser, &specialistUser, &patientUser} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	specialist := models.Specialist{
		UserID:              specialistUser.ID,
		Specialty:           "Acupuncture",
		Description:         "Licensed acupuncturist with 10+ years of experience",
		PhoneNumber:         "+1-555-0123",
		ProfessionalLicense: "ACU-12345",
		Bio:                 "Dr. Sarah Johnson is a certified acupuncturist specializing in pain management and stress relief.",
	}
	patient := models.Patient{
		UserID:               patientUser.ID,
		DateOfBirth:          time.Date(1985, time.June, 15, 0, 0, 0, 0, time.UTC),
		Address:              "123 Main St, City, State 12345",
		EmergencyPhone:       "+1-555-9999",
		EmergencyContactName: "Jane Doe",
		BaseMedicalHistory:   "No known allergies. Previous treatments include physical therapy for back pain.",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&specialist).Error; err != nil {
			return err
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed profiles: %w", err)
	}

	log.Printf("Seeded %d users, 1 specialist, 1 patient", 3)

	return nil
}
