package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/pablopalop/SyEI/internal/models"
	"gorm.io/gorm"
)

// MarkNotificationRead flips the read flag and stamps read_at. This is the
// only mutation a notification row ever receives. Marking an already-read
// notification keeps the original read_at. Returns gorm.ErrRecordNotFound
// for an unknown id.
func MarkNotificationRead(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is missing or it was already read.
		var n models.Notification
		return db.Select("id").First(&n, "id = ?", id).Error
	}
	return nil
}

// UnreadNotifications lists a user's unread notifications, newest first.
func UnreadNotifications(db *gorm.DB, userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}
