package models

import "time"

// Profile is the in-app identity wrapping a User. Posts, comments, favorites,
// messages, notifications and reports all hang off a Profile, not a User.
type Profile struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex"`
	User        User       `json:"user"`
	Photo       string     `json:"photo"`
	City        string     `json:"city"`
	Description string     `json:"description"`
	BirthDate   *time.Time `json:"birth_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DisplayName delegates to the owning user. Callers must have preloaded User.
func (p *Profile) DisplayName() string {
	return p.User.DisplayName()
}

// UpdateProfileRequest defines the request body for patching a profile.
// Photo carries a base64 data URI, decoded server-side.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Photo       string `json:"photo,omitempty"`
	City        string `json:"city,omitempty" validate:"omitempty,max=128"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2048"`
	BirthDate   string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
