package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:slug/comments", h.CreateComment)
	g.GET("/posts/:slug/comments", h.GetCommentsByPost)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a comment on a post, optionally under a parent
// comment on the same post. The comment-created reaction emits the
// notification.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostBySlug(c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if req.ParentID != nil {
		parent, err := h.commentRepository.GetCommentByID(*req.ParentID)
		if err != nil || parent.PostID != post.ID {
			return echo.NewHTTPError(http.StatusNotFound, "Parent comment not found")
		}
	}

	comment := &models.Comment{
		AuthorID: profileID,
		PostID:   post.ID,
		ParentID: req.ParentID,
		Content:  req.Content,
		IsActive: true,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPost retrieves all comments for a post
func (h *CommentHandler) GetCommentsByPost(c echo.Context) error {
	post, err := h.postRepository.GetPostBySlug(c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comments)
}

// DeleteComment deletes a comment owned by the authenticated profile. The
// comment-deleted reaction cascades to descendant comments.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.AuthorID != profileID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.DeleteComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
