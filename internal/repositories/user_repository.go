package repositories

import (
	"fmt"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"gorm.io/gorm"
)

// UserRepository defines the interface for account operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	NextAvailableUsername(base string) (string, error)
}

// PostgresUserRepository implements UserRepository
type PostgresUserRepository struct {
	db        *gorm.DB
	reactions reactions.Handler
}

func NewPostgresUserRepository(db *gorm.DB, handler reactions.Handler) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, reactions: handler}
}

// CreateUser creates the account and, through the reaction handler, its
// profile. Both rows commit or neither does.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return r.reactions.AccountCreated(tx, user)
	})
}

func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser saves the account and fires the account-saved reaction.
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return r.reactions.AccountSaved(tx, user)
	})
}

// NextAvailableUsername probes base, base1, base2... until a free username is
// found, mirroring the slug assignment strategy.
func (r *PostgresUserRepository) NextAvailableUsername(base string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		var count int64
		if err := r.db.Model(&models.User{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, n)
	}
}
