package models

import "time"

// ReportedPost is a moderation report against a post.
type ReportedPost struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReporterID uint      `json:"reporter_id" gorm:"index"`
	Reporter   Profile   `json:"reporter"`
	PostID     uint      `json:"post_id" gorm:"index"`
	Reason     string    `json:"reason" gorm:"type:text"`
	IsPending  bool      `json:"is_pending" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportedComment is a moderation report against a comment.
type ReportedComment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReporterID uint      `json:"reporter_id" gorm:"index"`
	Reporter   Profile   `json:"reporter"`
	CommentID  uint      `json:"comment_id" gorm:"index"`
	Reason     string    `json:"reason" gorm:"type:text"`
	IsPending  bool      `json:"is_pending" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for reporting a post or comment.
type CreateReportRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=2048"`
}
