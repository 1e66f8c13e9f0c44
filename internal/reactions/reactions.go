package reactions

import (
	"log"

	"github.com/momus-app/momus/backend/internal/models"
	"gorm.io/gorm"
)

// Handler receives entity lifecycle events from the repositories. Every method
// is called synchronously inside the transaction that performed the triggering
// write, exactly once per write. Returning an error aborts that transaction.
type Handler interface {
	AccountCreated(tx *gorm.DB, user *models.User) error
	AccountSaved(tx *gorm.DB, user *models.User) error
	ProfileDeleted(tx *gorm.DB, profile *models.Profile) error
	CommentCreated(tx *gorm.DB, comment *models.Comment) error
	CommentDeleted(tx *gorm.DB, comment *models.Comment) error
	MessageCreated(tx *gorm.DB, message *models.Message) error
	PostDeleted(tx *gorm.DB, post *models.Post) error
	PostApproved(tx *gorm.DB, post *models.Post) error
}

// Policy holds the named behavior switches for rules whose upstream behavior
// is questionable but must be reproducible.
type Policy struct {
	// NotifyPostAuthor addresses COMMENT notifications to the post's author
	// instead of the comment's own author. Off by default: the upstream
	// system notifies the commenter.
	NotifyPostAuthor bool

	// LegacySingleLevel limits the comment deletion cascade to direct
	// children, leaving grandchildren orphaned, matching the upstream
	// system. Off by default: the full subtree is deleted.
	LegacySingleLevel bool
}

// Hub implements Handler.
type Hub struct {
	policy Policy
}

func NewHub(policy Policy) *Hub {
	return &Hub{policy: policy}
}

// AccountCreated provisions the account's profile. A profile must exist for
// every user, so a failure here aborts the account creation.
func (h *Hub) AccountCreated(tx *gorm.DB, user *models.User) error {
	return tx.Create(&models.Profile{UserID: user.ID}).Error
}

// AccountSaved re-saves the account's profile. It has no observable effect on
// the profile's own fields and exists only to keep derived state warm after
// account updates.
func (h *Hub) AccountSaved(tx *gorm.DB, user *models.User) error {
	var profile models.Profile
	err := tx.Where("user_id = ?", user.ID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return tx.Save(&profile).Error
}

// ProfileDeleted removes the owning user account. Deleting the profile is the
// way an account leaves the system; the ownership cascade runs inverted.
func (h *Hub) ProfileDeleted(tx *gorm.DB, profile *models.Profile) error {
	return tx.Delete(&models.User{}, profile.UserID).Error
}

// CommentCreated emits a COMMENT notification carrying the post's slug.
func (h *Hub) CommentCreated(tx *gorm.DB, comment *models.Comment) error {
	var post models.Post
	if err := tx.First(&post, comment.PostID).Error; err != nil {
		return err
	}
	recipient := comment.AuthorID
	if h.policy.NotifyPostAuthor {
		recipient = post.AuthorID
	}
	h.notify(tx, recipient, CommentPayload{Slug: post.Slug})
	return nil
}

// CommentDeleted cascade-deletes the comment's descendants with an explicit
// worklist so arbitrarily deep trees are handled without recursion. Under
// LegacySingleLevel only direct children are removed. A cascade that matches
// no rows is a successful no-op.
func (h *Hub) CommentDeleted(tx *gorm.DB, comment *models.Comment) error {
	stack := []uint{comment.ID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var children []models.Comment
		if err := tx.Where("parent_id = ?", id).Find(&children).Error; err != nil {
			return err
		}
		for _, child := range children {
			if !h.policy.LegacySingleLevel {
				stack = append(stack, child.ID)
			}
			if err := tx.Delete(&models.Comment{}, child.ID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// MessageCreated emits a MESSAGE notification to the receiver carrying the
// sender's display name.
func (h *Hub) MessageCreated(tx *gorm.DB, message *models.Message) error {
	var sender models.Profile
	if err := tx.Preload("User").First(&sender, message.SenderID).Error; err != nil {
		return err
	}
	h.notify(tx, message.ReceiverID, MessagePayload{From: sender.DisplayName()})
	return nil
}

// PostDeleted emits a REMOVE notification to the author carrying the title of
// the post that no longer exists.
func (h *Hub) PostDeleted(tx *gorm.DB, post *models.Post) error {
	h.notify(tx, post.AuthorID, RemovalPayload{Title: post.Title})
	return nil
}

// PostApproved emits a TO_MAIN notification to the author when a moderator
// clears the pending flag.
func (h *Hub) PostApproved(tx *gorm.DB, post *models.Post) error {
	h.notify(tx, post.AuthorID, PromotionPayload{Slug: post.Slug})
	return nil
}

// notify writes a notification best-effort. Delivery is not guaranteed: a
// failure is logged and never fails the triggering write.
func (h *Hub) notify(tx *gorm.DB, recipientID uint, payload Payload) {
	n := &models.Notification{
		RecipientID: recipientID,
		Type:        payload.Kind(),
		Data:        payload.Data(),
	}
	if err := tx.Create(n).Error; err != nil {
		log.Printf("reactions: failed to create %s notification for profile %d: %v", payload.Kind(), recipientID, err)
	}
}
