package repositories

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/momus-app/momus/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_SlugFromTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")

	post := &models.Post{AuthorID: author.ID, Title: "Morning Coffee", IsPending: true}
	require.NoError(t, repo.CreatePost(post))

	assert.Equal(t, "morning-coffee", post.Slug)
}

func TestCreatePost_DuplicateTitlesGetSuffixedSlugs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")

	var slugs []string
	for i := 0; i < 3; i++ {
		post := &models.Post{AuthorID: author.ID, Title: "Morning Coffee", IsPending: true}
		require.NoError(t, repo.CreatePost(post))
		slugs = append(slugs, post.Slug)
	}

	assert.Equal(t, []string{"morning-coffee", "morning-coffee-1", "morning-coffee-2"}, slugs)
}

func TestCreatePost_SlugsUniqueOverRandomTitles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")

	rng := rand.New(rand.NewSource(1))
	titles := []string{"Lake", "Old Town", "Lake", "lake", "Night Sky", "Old Town", "Lake"}
	for i := 0; i < 30; i++ {
		titles = append(titles, fmt.Sprintf("Shot %d", rng.Intn(5)))
	}

	seen := make(map[string]bool)
	for _, title := range titles {
		post := &models.Post{AuthorID: author.ID, Title: title, IsPending: true}
		require.NoError(t, repo.CreatePost(post))
		assert.False(t, seen[post.Slug], "slug %q assigned twice", post.Slug)
		seen[post.Slug] = true
	}
}

func TestListPosts_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	anna := createTestProfile(t, db, "anna", "", "")
	bart := createTestProfile(t, db, "bart", "", "")

	approved := &models.Post{AuthorID: anna.ID, Title: "Lake", Tags: []string{"nature", "water"}}
	require.NoError(t, repo.CreatePost(approved))
	require.NoError(t, db.Model(approved).Update("is_pending", false).Error)

	pending := &models.Post{AuthorID: bart.ID, Title: "City", Tags: []string{"urban"}, IsPending: true}
	require.NoError(t, repo.CreatePost(pending))

	byTag, err := repo.ListPosts(models.PostFilter{Tags: []string{"nature"}})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "lake", byTag[0].Slug)

	byAuthor, err := repo.ListPosts(models.PostFilter{Author: "bart"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "city", byAuthor[0].Slug)

	notPending := false
	byPending, err := repo.ListPosts(models.PostFilter{IsPending: &notPending})
	require.NoError(t, err)
	require.Len(t, byPending, 1)
	assert.Equal(t, "lake", byPending[0].Slug)
}

func TestDeletePost_EmitsRemovalNotification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")

	post := &models.Post{AuthorID: author.ID, Title: "Doomed", IsPending: true}
	require.NoError(t, repo.CreatePost(post))
	require.NoError(t, repo.DeletePost(post))

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	var notification models.Notification
	require.NoError(t, db.Where("recipient_id = ?", author.ID).First(&notification).Error)
	assert.Equal(t, models.NotificationRemove, notification.Type)
	assert.Equal(t, "Doomed", notification.Data)
}

func TestApprovePost_ClearsPendingAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db, testHub())
	author := createTestProfile(t, db, "author", "", "")

	post := &models.Post{AuthorID: author.ID, Title: "Waiting", IsPending: true}
	require.NoError(t, repo.CreatePost(post))
	require.NoError(t, repo.ApprovePost(post))

	reloaded, err := repo.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPending)

	var notification models.Notification
	require.NoError(t, db.Where("recipient_id = ?", author.ID).First(&notification).Error)
	assert.Equal(t, models.NotificationToMain, notification.Type)
	assert.Equal(t, "waiting", notification.Data)
}
