package reactions

import (
	"testing"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/stretchr/testify/assert"
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
	))
	return db
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

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, title, slug string) *models.Post {
	post := &models.Post{
		AuthorID:  authorID,
		Title:     title,
		Slug:      slug,
		IsPending: true,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, authorID, postID uint, parentID *uint) *models.Comment {
	comment := &models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		ParentID: parentID,
		Content:  "test comment",
		IsActive: true,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func notificationsFor(t *testing.T, db *gorm.DB, profileID uint) []models.Notification {
	var notifications []models.Notification
	require.NoError(t, db.Where("recipient_id = ?", profileID).Find(&notifications).Error)
	return notifications
}

func TestAccountCreated_ProvisionsProfile(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	user := &models.User{Username: "newcomer", Email: "newcomer@test.com"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, hub.AccountCreated(db, user))

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, user.ID, profile.UserID)
}

func TestAccountSaved_NoObservableEffect(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	profile := createTestProfile(t, db, "steady", "", "")
	profile.City = "Radom"
	require.NoError(t, db.Save(profile).Error)

	require.NoError(t, hub.AccountSaved(db, &profile.User))

	var reloaded models.Profile
	require.NoError(t, db.First(&reloaded, profile.ID).Error)
	assert.Equal(t, "Radom", reloaded.City)
}

func TestAccountSaved_MissingProfileIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	user := &models.User{Username: "orphan", Email: "orphan@test.com"}
	require.NoError(t, db.Create(user).Error)

	assert.NoError(t, hub.AccountSaved(db, user))
}

func TestProfileDeleted_DeletesOwningUser(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	profile := createTestProfile(t, db, "leaver", "", "")
	require.NoError(t, db.Delete(&models.Profile{}, profile.ID).Error)
	require.NoError(t, hub.ProfileDeleted(db, profile))

	var count int64
	db.Model(&models.User{}).Where("id = ?", profile.UserID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCommentCreated_NotifiesCommentAuthor(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	owner := createTestProfile(t, db, "owner", "", "")
	commenter := createTestProfile(t, db, "commenter", "", "")
	post := createTestPost(t, db, owner.ID, "Sunset", "sunset")
	comment := createTestComment(t, db, commenter.ID, post.ID, nil)

	require.NoError(t, hub.CommentCreated(db, comment))

	// The commenter, not the post owner, receives the notification.
	notifications := notificationsFor(t, db, commenter.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Type)
	assert.Equal(t, "sunset", notifications[0].Data)
	assert.Empty(t, notificationsFor(t, db, owner.ID))
}

func TestCommentCreated_NotifyPostAuthorPolicy(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{NotifyPostAuthor: true})

	owner := createTestProfile(t, db, "owner", "", "")
	commenter := createTestProfile(t, db, "commenter", "", "")
	post := createTestPost(t, db, owner.ID, "Sunset", "sunset")
	comment := createTestComment(t, db, commenter.ID, post.ID, nil)

	require.NoError(t, hub.CommentCreated(db, comment))

	notifications := notificationsFor(t, db, owner.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Type)
	assert.Equal(t, "sunset", notifications[0].Data)
	assert.Empty(t, notificationsFor(t, db, commenter.ID))
}

func TestMessageCreated_NotifiesReceiverWithSenderName(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	sender := createTestProfile(t, db, "jsnow", "John", "Snow")
	receiver := createTestProfile(t, db, "reader", "", "")

	message := &models.Message{SenderID: sender.ID, ReceiverID: receiver.ID, Content: "hello"}
	require.NoError(t, db.Create(message).Error)
	require.NoError(t, hub.MessageCreated(db, message))

	notifications := notificationsFor(t, db, receiver.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationMessage, notifications[0].Type)
	assert.Equal(t, "John Snow", notifications[0].Data)
}

func TestMessageCreated_SenderNameFallsBackToUsername(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	sender := createTestProfile(t, db, "anon", "", "")
	receiver := createTestProfile(t, db, "reader", "", "")

	message := &models.Message{SenderID: sender.ID, ReceiverID: receiver.ID, Content: "hi"}
	require.NoError(t, db.Create(message).Error)
	require.NoError(t, hub.MessageCreated(db, message))

	notifications := notificationsFor(t, db, receiver.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "anon", notifications[0].Data)
}

func TestPostDeleted_NotifiesAuthorWithTitle(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	author := createTestProfile(t, db, "author", "", "")
	post := createTestPost(t, db, author.ID, "Old Mill", "old-mill")

	require.NoError(t, db.Delete(&models.Post{}, post.ID).Error)
	require.NoError(t, hub.PostDeleted(db, post))

	// The notification carries the title even though the post row is gone.
	notifications := notificationsFor(t, db, author.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationRemove, notifications[0].Type)
	assert.Equal(t, "Old Mill", notifications[0].Data)
}

func TestPostApproved_NotifiesAuthorWithSlug(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	author := createTestProfile(t, db, "author", "", "")
	post := createTestPost(t, db, author.ID, "Old Mill", "old-mill")

	require.NoError(t, hub.PostApproved(db, post))

	notifications := notificationsFor(t, db, author.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationToMain, notifications[0].Type)
	assert.Equal(t, "old-mill", notifications[0].Data)
}

func TestCommentDeleted_FullTreeCascade(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	author := createTestProfile(t, db, "author", "", "")
	post := createTestPost(t, db, author.ID, "Thread", "thread")

	root := createTestComment(t, db, author.ID, post.ID, nil)
	childA := createTestComment(t, db, author.ID, post.ID, &root.ID)
	childB := createTestComment(t, db, author.ID, post.ID, &root.ID)
	grandchild := createTestComment(t, db, author.ID, post.ID, &childA.ID)

	require.NoError(t, db.Delete(&models.Comment{}, root.ID).Error)
	require.NoError(t, hub.CommentDeleted(db, root))

	var count int64
	db.Model(&models.Comment{}).Where("id IN ?", []uint{childA.ID, childB.ID, grandchild.ID}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCommentDeleted_LegacySingleLevelOrphansGrandchildren(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{LegacySingleLevel: true})

	author := createTestProfile(t, db, "author", "", "")
	post := createTestPost(t, db, author.ID, "Thread", "thread")

	root := createTestComment(t, db, author.ID, post.ID, nil)
	childA := createTestComment(t, db, author.ID, post.ID, &root.ID)
	childB := createTestComment(t, db, author.ID, post.ID, &root.ID)
	grandchild := createTestComment(t, db, author.ID, post.ID, &childA.ID)

	require.NoError(t, db.Delete(&models.Comment{}, root.ID).Error)
	require.NoError(t, hub.CommentDeleted(db, root))

	var count int64
	db.Model(&models.Comment{}).Where("id IN ?", []uint{childA.ID, childB.ID}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The grandchild survives, orphaned, exactly as upstream behaves.
	var survivor models.Comment
	assert.NoError(t, db.First(&survivor, grandchild.ID).Error)
}

func TestCommentDeleted_NoChildrenIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	hub := NewHub(Policy{})

	author := createTestProfile(t, db, "author", "", "")
	post := createTestPost(t, db, author.ID, "Thread", "thread")
	leaf := createTestComment(t, db, author.ID, post.ID, nil)

	require.NoError(t, db.Delete(&models.Comment{}, leaf.ID).Error)
	assert.NoError(t, hub.CommentDeleted(db, leaf))
}
