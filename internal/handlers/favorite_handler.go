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

// FavoriteHandler handles HTTP requests related to favorites
type FavoriteHandler struct {
	favoriteRepository repositories.FavoriteRepository
	postRepository     repositories.PostRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository, postRepo repositories.PostRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepository: favoriteRepo,
		postRepository:     postRepo,
	}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/favorites", h.CreateFavorite)
	g.DELETE("/favorites/:post_id", h.DeleteFavorite)
	g.GET("/favorites", h.ListFavorites)
}

// CreateFavorite favorites a post. Favoriting the same post twice is a
// rejected write, surfaced as a conflict.
func (h *FavoriteHandler) CreateFavorite(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	favorite := &models.Favorite{
		ProfileID: profileID,
		PostID:    req.PostID,
	}

	if err := h.favoriteRepository.CreateFavorite(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Post already favorited")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, favorite)
}

// DeleteFavorite removes a favorite by post id
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.favoriteRepository.DeleteFavorite(profileID, uint(postID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Favorite not found")
	}

	return c.NoContent(http.StatusNoContent)
}

// ListFavorites lists the authenticated profile's favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	favorites, err := h.favoriteRepository.GetFavoritesByProfile(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, favorites)
}
