package reactions

import "github.com/momus-app/momus/backend/internal/models"

// Payload is a typed notification payload. Each concrete payload knows which
// notification type it belongs to and how it flattens into the stored Data
// string, so the type/data pairing can never drift apart at a call site.
type Payload interface {
	Kind() models.NotificationType
	Data() string
}

// CommentPayload carries the slug of the commented post.
type CommentPayload struct {
	Slug string
}

func (p CommentPayload) Kind() models.NotificationType { return models.NotificationComment }
func (p CommentPayload) Data() string                  { return p.Slug }

// MessagePayload carries the sender's display name.
type MessagePayload struct {
	From string
}

func (p MessagePayload) Kind() models.NotificationType { return models.NotificationMessage }
func (p MessagePayload) Data() string                  { return p.From }

// RemovalPayload carries the title of the removed post.
type RemovalPayload struct {
	Title string
}

func (p RemovalPayload) Kind() models.NotificationType { return models.NotificationRemove }
func (p RemovalPayload) Data() string                  { return p.Title }

// PromotionPayload carries the slug of a post approved onto the main page.
type PromotionPayload struct {
	Slug string
}

func (p PromotionPayload) Kind() models.NotificationType { return models.NotificationToMain }
func (p PromotionPayload) Data() string                  { return p.Slug }
