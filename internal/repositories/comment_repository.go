package repositories

import (
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	DeleteComment(comment *models.Comment) error
}

// PostgresCommentRepository implements CommentRepository
type PostgresCommentRepository struct {
	db        *gorm.DB
	reactions reactions.Handler
}

func NewPostgresCommentRepository(db *gorm.DB, handler reactions.Handler) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db, reactions: handler}
}

// CreateComment creates the comment and fires the comment-created reaction.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return r.reactions.CommentCreated(tx, comment)
	})
}

func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author.User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("Author.User").Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes the comment and fires the comment-deleted reaction,
// which cascades to descendant comments.
func (r *PostgresCommentRepository) DeleteComment(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, comment.ID).Error; err != nil {
			return err
		}
		return r.reactions.CommentDeleted(tx, comment)
	})
}
