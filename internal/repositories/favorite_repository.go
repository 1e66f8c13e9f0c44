package repositories

import (
	"fmt"

	"github.com/momus-app/momus/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorite operations
type FavoriteRepository interface {
	CreateFavorite(favorite *models.Favorite) error
	DeleteFavorite(profileID, postID uint) error
	GetFavoritesByProfile(profileID uint) ([]models.Favorite, error)
	IsFavorited(profileID, postID uint) (bool, error)
}

// PostgresFavoriteRepository implements FavoriteRepository
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// CreateFavorite inserts the (profile, post) pair. A duplicate pair violates
// the composite unique index and surfaces as gorm.ErrDuplicatedKey.
func (r *PostgresFavoriteRepository) CreateFavorite(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *PostgresFavoriteRepository) DeleteFavorite(profileID, postID uint) error {
	res := r.db.Where("profile_id = ? AND post_id = ?", profileID, postID).Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite not found")
	}
	return nil
}

func (r *PostgresFavoriteRepository) GetFavoritesByProfile(profileID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *PostgresFavoriteRepository) IsFavorited(profileID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("profile_id = ? AND post_id = ?", profileID, postID).Count(&count).Error
	return count > 0, err
}
