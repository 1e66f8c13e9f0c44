package repositories

import (
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile operations
type ProfileRepository interface {
	GetProfileByID(id uint) (*models.Profile, error)
	GetProfileByUserID(userID uint) (*models.Profile, error)
	GetProfileByUsername(username string) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	DeleteProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository
type PostgresProfileRepository struct {
	db        *gorm.DB
	reactions reactions.Handler
}

func NewPostgresProfileRepository(db *gorm.DB, handler reactions.Handler) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db, reactions: handler}
}

func (r *PostgresProfileRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) GetProfileByUsername(username string) (*models.Profile, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := r.db.Preload("User").Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// DeleteProfile removes the profile and, through the reaction handler, the
// owning user account.
func (r *PostgresProfileRepository) DeleteProfile(profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Profile{}, profile.ID).Error; err != nil {
			return err
		}
		return r.reactions.ProfileDeleted(tx, profile)
	})
}
