package repositories

import (
	"sort"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for private messages and the
// conversation views derived from them. Conversations are not stored; they
// are computed from symmetric sender/receiver predicates on read.
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessageByID(id uint) (*models.Message, error)
	ListPartners(profileID uint) ([]models.Profile, error)
	GetConversation(profileID, partnerID uint) ([]models.Message, error)
	GetUnread(receiverID uint) ([]models.Message, error)
	MarkAsRead(messageID uint) error
}

// PostgresMessageRepository implements MessageRepository
type PostgresMessageRepository struct {
	db        *gorm.DB
	reactions reactions.Handler
}

func NewPostgresMessageRepository(db *gorm.DB, handler reactions.Handler) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db, reactions: handler}
}

// CreateMessage creates the message and fires the message-created reaction,
// which notifies the receiver.
func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return r.reactions.MessageCreated(tx, message)
	})
}

func (r *PostgresMessageRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListPartners returns every distinct profile the given profile has exchanged
// at least one message with, in either direction, ordered by display name.
func (r *PostgresMessageRepository) ListPartners(profileID uint) ([]models.Profile, error) {
	var messages []models.Message
	if err := r.db.Select("sender_id", "receiver_id").
		Where("sender_id = ? OR receiver_id = ?", profileID, profileID).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var partnerIDs []uint
	for _, m := range messages {
		partner := m.SenderID
		if partner == profileID {
			partner = m.ReceiverID
		}
		if partner == profileID || seen[partner] {
			continue
		}
		seen[partner] = true
		partnerIDs = append(partnerIDs, partner)
	}
	if len(partnerIDs) == 0 {
		return []models.Profile{}, nil
	}

	var partners []models.Profile
	if err := r.db.Preload("User").Where("id IN ?", partnerIDs).Find(&partners).Error; err != nil {
		return nil, err
	}
	sort.Slice(partners, func(i, j int) bool {
		return partners[i].DisplayName() < partners[j].DisplayName()
	})
	return partners, nil
}

// GetConversation returns all messages between the two profiles in either
// direction, newest first.
func (r *PostgresMessageRepository) GetConversation(profileID, partnerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender.User").Preload("Receiver.User").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			profileID, partnerID, partnerID, profileID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// GetUnread returns the profile's unread inbox, newest first.
func (r *PostgresMessageRepository) GetUnread(receiverID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender.User").
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// MarkAsRead flips the read flag; message content is immutable.
func (r *PostgresMessageRepository) MarkAsRead(messageID uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", messageID).Update("is_read", true).Error
}
