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

// MessageHandler handles HTTP requests related to private messages and the
// conversation views derived from them
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	profileRepository repositories.ProfileRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, profileRepo repositories.ProfileRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		profileRepository: profileRepo,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages/:username", h.SendMessage)
	g.GET("/conversations", h.ListConversations)
	g.GET("/conversations/:username", h.GetConversation)
	g.GET("/messages/unread", h.GetUnread)
	g.PATCH("/messages/:id/read", h.MarkAsRead)
}

// SendMessage sends a private message to the profile behind the username.
// The receiver is notified by the message-created reaction.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	receiver, err := h.profileRepository.GetProfileByUsername(c.Param("username"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipient not found")
	}

	message := &models.Message{
		SenderID:   profileID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	}

	if err := h.messageRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, message)
}

// ListConversations lists every profile the authenticated profile has
// exchanged messages with
func (h *MessageHandler) ListConversations(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	partners, err := h.messageRepository.ListPartners(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, partners)
}

// GetConversation retrieves the message history with one partner, newest
// first
func (h *MessageHandler) GetConversation(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	partner, err := h.profileRepository.GetProfileByUsername(c.Param("username"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Partner not found")
	}

	messages, err := h.messageRepository.GetConversation(profileID, partner.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, messages)
}

// GetUnread retrieves the authenticated profile's unread messages
func (h *MessageHandler) GetUnread(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	messages, err := h.messageRepository.GetUnread(profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, messages)
}

// MarkAsRead flips the read flag on a received message
func (h *MessageHandler) MarkAsRead(c echo.Context) error {
	profileID := c.Get("profileID").(uint)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	message, err := h.messageRepository.GetMessageByID(uint(messageID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if message.ReceiverID != profileID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the recipient of this message")
	}

	if err := h.messageRepository.MarkAsRead(message.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
