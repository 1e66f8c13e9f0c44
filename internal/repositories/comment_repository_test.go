package repositories

import (
	"testing"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedThread(t *testing.T, db *gorm.DB, repo *PostgresCommentRepository, authorID, postID uint) (root, childA, childB, grandchild *models.Comment) {
	newComment := func(parentID *uint) *models.Comment {
		c := &models.Comment{AuthorID: authorID, PostID: postID, ParentID: parentID, Content: "c", IsActive: true}
		require.NoError(t, repo.CreateComment(c))
		return c
	}
	root = newComment(nil)
	childA = newComment(&root.ID)
	childB = newComment(&root.ID)
	grandchild = newComment(&childA.ID)
	return
}

func TestCreateComment_EmitsSelfNotificationWithSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db, testHub())
	postRepo := NewPostgresPostRepository(db, testHub())

	owner := createTestProfile(t, db, "owner", "", "")
	commenter := createTestProfile(t, db, "commenter", "", "")
	post := &models.Post{AuthorID: owner.ID, Title: "Sunset", IsPending: true}
	require.NoError(t, postRepo.CreatePost(post))

	comment := &models.Comment{AuthorID: commenter.ID, PostID: post.ID, Content: "nice", IsActive: true}
	require.NoError(t, repo.CreateComment(comment))

	var notifications []models.Notification
	require.NoError(t, db.Where("recipient_id = ?", commenter.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Type)
	assert.Equal(t, "sunset", notifications[0].Data)
}

func TestDeleteComment_CascadesFullTree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")
	post := &models.Post{AuthorID: author.ID, Title: "Thread", Slug: "thread", IsPending: true}
	require.NoError(t, db.Create(post).Error)

	root, _, _, _ := seedThread(t, db, repo, author.ID, post.ID)
	require.NoError(t, repo.DeleteComment(root))

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteComment_LegacySingleLevelKeepsGrandchild(t *testing.T) {
	db := setupTestDB(t)
	legacyHub := reactions.NewHub(reactions.Policy{LegacySingleLevel: true})
	repo := NewPostgresCommentRepository(db, legacyHub)
	author := createTestProfile(t, db, "author", "", "")
	post := &models.Post{AuthorID: author.ID, Title: "Thread", Slug: "thread", IsPending: true}
	require.NoError(t, db.Create(post).Error)

	root, _, _, grandchild := seedThread(t, db, repo, author.ID, post.ID)
	require.NoError(t, repo.DeleteComment(root))

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var survivor models.Comment
	assert.NoError(t, db.First(&survivor, grandchild.ID).Error)
}
