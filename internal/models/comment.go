package models

import "time"

// Comment is attached to a Post and optionally to a parent Comment,
// forming a tree of arbitrary depth.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    Profile   `json:"author"`
	PostID    uint      `json:"post_id" gorm:"index"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a comment.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2048"`
	ParentID *uint  `json:"parent_id,omitempty"`
}
