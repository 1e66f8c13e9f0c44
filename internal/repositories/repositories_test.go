package repositories

import (
	"testing"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across
	// transactions.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Favorite{},
		&models.Comment{},
		&models.Message{},
		&models.Notification{},
		&models.ReportedPost{},
		&models.ReportedComment{},
	))
	return db
}

func testHub() reactions.Handler {
	return reactions.NewHub(reactions.Policy{})
}

func createTestProfile(t *testing.T, db *gorm.DB, username, firstName, lastName string) *models.Profile {
	user := &models.User{
		Username:  username,
		Email:     username + "@test.com",
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(t, db.Create(user).Error)
	profile := &models.Profile{UserID: user.ID, User: *user}
	require.NoError(t, db.Create(profile).Error)
	return profile
}
