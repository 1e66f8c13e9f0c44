package models

import "time"

// Post is an image post owned by a Profile. The slug is globally unique,
// derived from the title with an incrementing suffix on collision.
// A new post starts pending until a moderator approves it.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    Profile   `json:"author"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:255"`
	Image     string    `json:"image"`
	Rate      float64   `json:"rate"`
	Tags      []string  `json:"tags" gorm:"serializer:json"`
	IsPending bool      `json:"is_pending" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post.
// Image carries a base64 data URI.
type CreatePostRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=255"`
	Image string   `json:"image" validate:"required"`
	Tags  []string `json:"tags" validate:"max=5,dive,max=20"`
}

// PostFilter narrows post listings. Zero values mean "no filter".
type PostFilter struct {
	Tags      []string
	Author    string // author's username
	IsPending *bool
}
