package repositories

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"gorm.io/gorm"
)

// maxSlugAttempts bounds retries when racing another writer for the same slug.
const maxSlugAttempts = 5

// PostRepository defines the interface for post operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostBySlug(slug string) (*models.Post, error)
	ListPosts(filter models.PostFilter) ([]models.Post, error)
	DeletePost(post *models.Post) error
	ApprovePost(post *models.Post) error
}

// PostgresPostRepository implements PostRepository
type PostgresPostRepository struct {
	db        *gorm.DB
	reactions reactions.Handler
}

func NewPostgresPostRepository(db *gorm.DB, handler reactions.Handler) *PostgresPostRepository {
	return &PostgresPostRepository{db: db, reactions: handler}
}

// CreatePost assigns a unique slug by sequential probing (title, title-1,
// title-2, ...) and creates the post. The unique index on slug is the
// authority: if a concurrent writer takes the probed slug first, the insert
// fails with a duplicate key and probing restarts.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate, err := r.nextFreeSlug(post.Title)
		if err != nil {
			return err
		}
		post.Slug = candidate
		err = r.db.Create(post).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		post.ID = 0
	}
	return fmt.Errorf("could not assign a unique slug for title %q", post.Title)
}

func (r *PostgresPostRepository) nextFreeSlug(title string) (string, error) {
	candidate := slug.Make(title)
	for n := 1; ; n++ {
		var count int64
		if err := r.db.Model(&models.Post{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = slug.Make(fmt.Sprintf("%s-%d", title, n))
	}
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author.User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) GetPostBySlug(s string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author.User").Where("slug = ?", s).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns posts matching the filter, newest first. Tags are stored
// as a JSON array, so tag filtering matches on the quoted element.
func (r *PostgresPostRepository) ListPosts(filter models.PostFilter) ([]models.Post, error) {
	query := r.db.Preload("Author.User").Order("posts.created_at DESC")
	for _, tag := range filter.Tags {
		query = query.Where("posts.tags LIKE ?", fmt.Sprintf("%%%q%%", tag))
	}
	if filter.Author != "" {
		query = query.
			Joins("JOIN profiles ON profiles.id = posts.author_id").
			Joins("JOIN users ON users.id = profiles.user_id").
			Where("users.username = ?", filter.Author)
	}
	if filter.IsPending != nil {
		query = query.Where("posts.is_pending = ?", *filter.IsPending)
	}
	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost removes the post and fires the post-deleted reaction, which
// notifies the author with the title of the now-gone post.
func (r *PostgresPostRepository) DeletePost(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Post{}, post.ID).Error; err != nil {
			return err
		}
		return r.reactions.PostDeleted(tx, post)
	})
}

// ApprovePost clears the pending flag and fires the post-approved reaction.
func (r *PostgresPostRepository) ApprovePost(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).Update("is_pending", false).Error; err != nil {
			return err
		}
		post.IsPending = false
		return r.reactions.PostApproved(tx, post)
	})
}
