package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the closed set of appointment states, mirrored by
// the valid_appointment_status check constraint.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCanceled  AppointmentStatus = "Canceled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusNoShow    AppointmentStatus = "NoShow"
)

// Appointment represents the 'appointments' table, binding one specialist
// and one patient to the interval [start_datetime, end_datetime). The
// valid_appointment_time constraint keeps the interval ordered on insert
// and on every update.
type Appointment struct {
	Model
	SpecialistID    uuid.UUID         `gorm:"type:char(36);not null;index" json:"specialist_id"`
	PatientID       uuid.UUID         `gorm:"type:char(36);not null;index" json:"patient_id"`
	StartDatetime   time.Time         `gorm:"not null" json:"start_datetime"`
	EndDatetime     time.Time         `gorm:"not null;check:valid_appointment_time,end_datetime > start_datetime" json:"end_datetime"`
	Status          AppointmentStatus `gorm:"size:20;not null;default:'Pending';check:valid_appointment_status,status IN ('Pending','Confirmed','Canceled','Completed','NoShow')" json:"status"`
	AppointmentType string            `gorm:"size:50;not null" json:"appointment_type"`
	InternalNotes   string            `gorm:"type:text" json:"internal_notes,omitempty"`

	Specialist Specialist `gorm:"foreignKey:SpecialistID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Patient    Patient    `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}
