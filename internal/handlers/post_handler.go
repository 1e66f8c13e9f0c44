package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/repositories"
	"github.com/momus-app/momus/backend/pkg/images"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	uploadDir      string
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploadDir string) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploadDir:      uploadDir,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:slug", h.GetPost)
	g.DELETE("/posts/:slug", h.DeletePost)
}

// RegisterModerationRoutes registers routes restricted to moderators
func (h *PostHandler) RegisterModerationRoutes(g *echo.Group) {
	g.POST("/posts/:slug/approve", h.ApprovePost)
}

// CreatePost creates a new pending post with a unique slug
func (h *PostHandler) CreatePost(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imageName, err := images.Store(h.uploadDir, req.Image)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image payload")
	}

	post := &models.Post{
		AuthorID:  profileID,
		Title:     req.Title,
		Image:     imageName,
		Tags:      req.Tags,
		IsPending: true,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// ListPosts lists posts filtered by tags, author and pending state
func (h *PostHandler) ListPosts(c echo.Context) error {
	filter := models.PostFilter{Author: c.QueryParam("author")}
	if tags := c.QueryParam("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}
	if pending := c.QueryParam("is_pending"); pending != "" {
		value := pending == "true"
		filter.IsPending = &value
	}

	posts, err := h.postRepository.ListPosts(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by slug
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the authenticated profile. The author
// is notified by the post-deleted reaction.
func (h *PostHandler) DeletePost(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	post, err := h.postRepository.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != profileID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// ApprovePost clears the pending flag on a post and notifies its author
func (h *PostHandler) ApprovePost(c echo.Context) error {
	post, err := h.postRepository.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !post.IsPending {
		return c.JSON(http.StatusOK, post)
	}

	if err := h.postRepository.ApprovePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}
