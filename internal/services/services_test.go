package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pablopalop/SyEI/internal/database"
	"github.com/pablopalop/SyEI/internal/models"
	"github.com/pablopalop/SyEI/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.CreateTables(db), "failed to create schema")

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestRecordChange(t *testing.T) {
	db := setupTestDB(t)
	actor := createUser(t, db, "admin@x.com")

	recordID := uuid.New()
	before := map[string]interface{}{"first_name": "Old"}
	after := map[string]interface{}{"first_name": "New"}

	err := db.Transaction(func(tx *gorm.DB) error {
		return services.RecordChange(tx, "users", recordID, models.ActionUpdate, before, after, &actor.ID)
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "users", entry.TableName)
	assert.Equal(t, recordID, entry.RecordID)
	assert.Equal(t, models.ActionUpdate, entry.Action)
	assert.JSONEq(t, `{"first_name":"Old"}`, string(entry.OldValues.JSON))
	assert.JSONEq(t, `{"first_name":"New"}`, string(entry.NewValues.JSON))
	require.NotNil(t, entry.UserID)
	assert.Equal(t, actor.ID, *entry.UserID)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestRecordChangeInsertHasNoBeforeImage(t *testing.T) {
	db := setupTestDB(t)

	err := services.RecordChange(db, "templates", uuid.New(), models.ActionInsert, nil,
		map[string]interface{}{"template_name": "Intake"}, nil)
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Empty(t, entry.OldValues.JSON)
	assert.Nil(t, entry.UserID, "system mutations carry no actor")
}

func TestRecordChangeRollsBackWithTransaction(t *testing.T) {
	db := setupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := services.RecordChange(tx, "users", uuid.New(), models.ActionDelete, nil, nil, nil); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count, "audit entry must roll back with the mutation")
}

func TestMarkNotificationRead(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "recipient@x.com")

	notification := models.Notification{
		UserID:           user.ID,
		Title:            "Appointment confirmed",
		Message:          "See you Monday at 9:00",
		NotificationType: "appointment",
	}
	require.NoError(t, db.Create(&notification).Error)

	require.NoError(t, services.MarkNotificationRead(db, notification.ID))

	var got models.Notification
	require.NoError(t, db.First(&got, "id = ?", notification.ID).Error)
	assert.True(t, got.IsRead)
	require.NotNil(t, got.ReadAt)

	firstReadAt := *got.ReadAt
	time.Sleep(10 * time.Millisecond)

	// Marking again neither errors nor moves read_at.
	require.NoError(t, services.MarkNotificationRead(db, notification.ID))
	require.NoError(t, db.First(&got, "id = ?", notification.ID).Error)
	require.NotNil(t, got.ReadAt)
	assert.True(t, firstReadAt.Equal(*got.ReadAt))
}

func TestMarkNotificationReadUnknownID(t *testing.T) {
	db := setupTestDB(t)

	err := services.MarkNotificationRead(db, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnreadNotifications(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "recipient@x.com")

	for _, title := range []string{"first", "second", "third"} {
		n := models.Notification{
			UserID:           user.ID,
			Title:            title,
			Message:          "m",
			NotificationType: "system",
		}
		require.NoError(t, db.Create(&n).Error)
		if title == "second" {
			require.NoError(t, services.MarkNotificationRead(db, n.ID))
		}
	}

	unread, err := services.UnreadNotifications(db, user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	for _, n := range unread {
		assert.NotEqual(t, "second", n.Title)
	}
}
