package models

import "time"

// Favorite marks a post as favorited by a profile. The composite unique
// index makes a duplicate favorite a rejected write, not a silent merge.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProfileID uint      `json:"profile_id" gorm:"index;uniqueIndex:idx_profile_post_favorite"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_profile_post_favorite"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFavoriteRequest defines the request body for favoriting a post.
type CreateFavoriteRequest struct {
	PostID uint `json:"post_id" validate:"required"`
}
