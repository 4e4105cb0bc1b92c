package handlers

import (
	"afiyazone/internal/middleware"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler exposes the caller's notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// RegisterRoutes registers the notification routes behind requireUser.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router, requireUser fiber.Handler) {
	notificationRoutes := router.Group("/notifications", requireUser)
	notificationRoutes.Get("/", h.HandleList)
	notificationRoutes.Get("/unread-count", h.HandleUnreadCount)
	notificationRoutes.Put("/mark-all-read", h.HandleMarkAllRead)
	notificationRoutes.Put("/:id/read", h.HandleMarkRead)
}

// HandleList returns the caller's notifications, newest first.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	notifications, err := h.service.List(c.UserContext(), middleware.UserIDFrom(c))
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(notifications)
}

// HandleUnreadCount returns how many notifications are unread.
func (h *NotificationHandler) HandleUnreadCount(c *fiber.Ctx) error {
	count, err := h.service.UnreadCount(c.UserContext(), middleware.UserIDFrom(c))
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleMarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	notification, err := h.service.MarkRead(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c))
	if err != nil {
		return notFoundOr(c, err, "Notification not found", "Server error")
	}
	return c.JSON(notification)
}

// HandleMarkAllRead marks all of the caller's notifications as read.
func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	updated, err := h.service.MarkAllRead(c.UserContext(), middleware.UserIDFrom(c))
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
		"updated": updated,
	})
}
