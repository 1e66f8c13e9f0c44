package repositories

import (
	"time"

	"github.com/momus-app/momus/backend/internal/models"
	"gorm.io/gorm"
)

// GroupedNotifications buckets a profile's notifications by age for inbox
// rendering.
type GroupedNotifications struct {
	Today     []models.Notification `json:"today"`
	Yesterday []models.Notification `json:"yesterday"`
	ThisWeek  []models.Notification `json:"this_week"`
	Older     []models.Notification `json:"older"`
}

// NotificationRepository defines the interface for notification operations.
// Notifications are only ever created by the reaction layer; this interface
// covers the read/ack side.
type NotificationRepository interface {
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetGrouped(recipientID uint) (*GroupedNotifications, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetGrouped(recipientID uint) (*GroupedNotifications, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekStart := todayStart.AddDate(0, 0, -7)

	grouped := &GroupedNotifications{}
	buckets := []struct {
		dest  *[]models.Notification
		where string
		args  []interface{}
	}{
		{&grouped.Today, "recipient_id = ? AND created_at >= ?", []interface{}{recipientID, todayStart}},
		{&grouped.Yesterday, "recipient_id = ? AND created_at >= ? AND created_at < ?", []interface{}{recipientID, yesterdayStart, todayStart}},
		{&grouped.ThisWeek, "recipient_id = ? AND created_at >= ? AND created_at < ?", []interface{}{recipientID, weekStart, yesterdayStart}},
		{&grouped.Older, "recipient_id = ? AND created_at < ?", []interface{}{recipientID, weekStart}},
	}
	for _, b := range buckets {
		if err := r.db.Where(b.where, b.args...).Order("created_at DESC").Limit(50).Find(b.dest).Error; err != nil {
			return nil, err
		}
	}
	return grouped, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", recipientID, false).Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", recipientID, false).Update("is_read", true).Error
}
