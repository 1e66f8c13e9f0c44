package models

import "time"

// NotificationType is the closed set of notification kinds. The meaning of
// Notification.Data depends entirely on the type: a post slug for COMMENT and
// TO_MAIN, a sender display name for MESSAGE, a post title for REMOVE.
type NotificationType string

const (
	NotificationMessage NotificationType = "MESSAGE"
	NotificationComment NotificationType = "COMMENT"
	NotificationRemove  NotificationType = "REMOVE"
	NotificationToMain  NotificationType = "TO_MAIN"
)

// Notification is owned by the receiving profile.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"index"`
	Type        NotificationType `json:"type" gorm:"size:30;index"`
	Data        string           `json:"data"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}
