package models

import "time"

// Message is a directed private message between two profiles.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index"`
	Sender     Profile   `json:"sender"`
	ReceiverID uint      `json:"receiver_id" gorm:"index"`
	Receiver   Profile   `json:"receiver"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// SendMessageRequest defines the request body for sending a message.
// The receiver is addressed by username in the URL.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4096"`
}
