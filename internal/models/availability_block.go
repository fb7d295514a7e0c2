package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityBlock represents the 'availability_blocks' table: a weekly
// recurring slot in a specialist's calendar. day_of_week runs 1=Monday
// through 7=Sunday; the range check is written as two independent clauses
// so every backend evaluates it as a real range test. An exception date
// marks a one-off override of the recurring slot.
type AvailabilityBlock struct {
	Model
	SpecialistID  uuid.UUID  `gorm:"type:char(36);not null;index" json:"specialist_id"`
	DayOfWeek     int        `gorm:"not null;check:valid_day_of_week,day_of_week >= 1 AND day_of_week <= 7" json:"day_of_week"`
	StartTime     time.Time  `gorm:"not null" json:"start_time"`
	EndTime       time.Time  `gorm:"not null;check:valid_time_range,end_time > start_time" json:"end_time"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	ExceptionDate *time.Time `json:"exception_date,omitempty"`

	Specialist Specialist `gorm:"foreignKey:SpecialistID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for AvailabilityBlock
func (AvailabilityBlock) TableName() string {
	return "availability_blocks"
}
