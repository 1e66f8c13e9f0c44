package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/repositories"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/grouped", h.GetGrouped)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PATCH("/notifications/:id/read", h.MarkAsRead)
	g.POST("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications retrieves the authenticated profile's notifications, paged
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := h.notificationRepository.GetByRecipientID(profileID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

// GetGrouped retrieves notifications bucketed by age
func (h *NotificationHandler) GetGrouped(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	grouped, err := h.notificationRepository.GetGrouped(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, grouped)
}

// GetUnreadCount returns the number of unread notifications
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	count, err := h.notificationRepository.GetUnreadCount(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"unread": count})
}

// MarkAsRead marks one notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(uint(notificationID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllAsRead marks all of the profile's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	if err := h.notificationRepository.MarkAllAsRead(profileID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
