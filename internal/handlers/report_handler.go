package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/repositories"
)

// ReportHandler handles HTTP requests related to moderation reports
type ReportHandler struct {
	reportRepository  repositories.ReportRepository
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportRepo repositories.ReportRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *ReportHandler {
	return &ReportHandler{
		reportRepository:  reportRepo,
		postRepository:    postRepo,
		commentRepository: commentRepo,
	}
}

// RegisterReportRoutes registers report submission routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/posts/:slug/report", h.ReportPost)
	g.POST("/comments/:id/report", h.ReportComment)
}

// RegisterModerationRoutes registers routes restricted to moderators
func (h *ReportHandler) RegisterModerationRoutes(g *echo.Group) {
	g.GET("/reports/posts", h.ListPendingPostReports)
	g.GET("/reports/comments", h.ListPendingCommentReports)
	g.POST("/reports/posts/:id/resolve", h.ResolvePostReport)
	g.POST("/reports/comments/:id/resolve", h.ResolveCommentReport)
}

// ReportPost files a moderation report against a post
func (h *ReportHandler) ReportPost(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.CreateReportRequest
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

	report := &models.ReportedPost{
		ReporterID: profileID,
		PostID:     post.ID,
		Reason:     req.Reason,
		IsPending:  true,
	}

	if err := h.reportRepository.CreatePostReport(report); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, report)
}

// ReportComment files a moderation report against a comment
func (h *ReportHandler) ReportComment(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	report := &models.ReportedComment{
		ReporterID: profileID,
		CommentID:  comment.ID,
		Reason:     req.Reason,
		IsPending:  true,
	}

	if err := h.reportRepository.CreateCommentReport(report); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, report)
}

// ListPendingPostReports lists unresolved post reports
func (h *ReportHandler) ListPendingPostReports(c echo.Context) error {
	reports, err := h.reportRepository.GetPendingPostReports()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// ListPendingCommentReports lists unresolved comment reports
func (h *ReportHandler) ListPendingCommentReports(c echo.Context) error {
	reports, err := h.reportRepository.GetPendingCommentReports()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// ResolvePostReport marks a post report as handled
func (h *ReportHandler) ResolvePostReport(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid report ID")
	}
	if err := h.reportRepository.ResolvePostReport(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ResolveCommentReport marks a comment report as handled
func (h *ReportHandler) ResolveCommentReport(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid report ID")
	}
	if err := h.reportRepository.ResolveCommentReport(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
