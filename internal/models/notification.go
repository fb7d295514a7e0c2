package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification represents the 'notifications' table: a message addressed
// to one user, initially unread. Rows are never updated after creation
// except for the read flag and its timestamp.
type Notification struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:char(36);not null;index" json:"user_id"`
	Title            string     `gorm:"size:200;not null" json:"title"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	NotificationType string     `gorm:"size:50;not null" json:"notification_type"`
	IsRead           bool       `gorm:"default:false" json:"is_read"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt           *time.Time `json:"read_at,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns the primary key when the caller did not supply one.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName overrides the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
