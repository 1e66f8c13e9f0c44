package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/repositories"
	"github.com/momus-app/momus/backend/pkg/images"
	"gorm.io/gorm"
)

// ProfileHandler handles HTTP requests related to profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	userRepository    repositories.UserRepository
	uploadDir         string
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository, uploadDir string) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		userRepository:    userRepo,
		uploadDir:         uploadDir,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/:username", h.GetProfile)
	g.PATCH("/profiles/me", h.UpdateOwnProfile)
	g.DELETE("/profiles/me", h.DeleteOwnProfile)
}

// GetProfile retrieves a profile by its user's username
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileRepository.GetProfileByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateOwnProfile patches the authenticated profile. Name changes are
// forwarded to the owning user record.
func (h *ProfileHandler) UpdateOwnProfile(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileRepository.GetProfileByID(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated profile not found in database")
	}

	if req.FirstName != "" || req.LastName != "" {
		user, err := h.userRepository.GetUserByID(profile.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if req.FirstName != "" {
			user.FirstName = req.FirstName
		}
		if req.LastName != "" {
			user.LastName = req.LastName
		}
		if err := h.userRepository.UpdateUser(user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		profile.User = *user
	}

	if req.Photo != "" {
		name, err := images.Store(h.uploadDir, req.Photo)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid photo payload")
		}
		profile.Photo = name
	}
	if req.City != "" {
		profile.City = req.City
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid birth date")
		}
		profile.BirthDate = &birthDate
	}

	if err := h.profileRepository.UpdateProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteOwnProfile deletes the authenticated profile. The owning user
// account is removed by the profile-deleted reaction.
func (h *ProfileHandler) DeleteOwnProfile(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	profile, err := h.profileRepository.GetProfileByID(profileID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.profileRepository.DeleteProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
