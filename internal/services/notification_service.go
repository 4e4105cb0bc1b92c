package services

import (
	"context"
	"fmt"

	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
)

// statusLabels are the customer-facing (Arabic) names of order statuses.
var statusLabels = map[string]string{
	models.OrderStatusPending:    "قيد الانتظار",
	models.OrderStatusProcessing: "قيد المعالجة",
	models.OrderStatusShipped:    "تم الشحن",
	models.OrderStatusDelivered:  "تم التوصيل",
	models.OrderStatusCancelled:  "ملغي",
}

// StatusLabel returns the display label of status, or status itself when
// it has none.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// OrderCreatedNotifications builds the notices for a freshly placed order:
// one for the customer and one per admin.
func OrderCreatedNotifications(order *models.Order, adminIDs []string) []models.Notification {
	orderID := order.ID
	notes := make([]models.Notification, 0, len(adminIDs)+1)
	notes = append(notes, models.Notification{
		UserID:      order.UserID,
		Type:        models.NotificationOrderCreated,
		Title:       "Order Created",
		Message:     fmt.Sprintf("Your order %s has been created successfully.", order.OrderNumber),
		OrderID:     &orderID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
	})
	for _, adminID := range adminIDs {
		notes = append(notes, models.Notification{
			UserID:      adminID,
			Type:        models.NotificationNewOrderAdmin,
			Title:       "New Order",
			Message:     fmt.Sprintf("New order %s has been placed.", order.OrderNumber),
			OrderID:     &orderID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
		})
	}
	return notes
}

// StatusChangedNotification builds the customer's notice for a status change.
func StatusChangedNotification(order *models.Order, status string) models.Notification {
	orderID := order.ID
	return models.Notification{
		UserID:      order.UserID,
		Type:        models.NotificationOrderStatusChanged,
		Title:       "Order Status Updated",
		Message:     fmt.Sprintf("Your order %s status has been updated to %s.", order.OrderNumber, StatusLabel(status)),
		OrderID:     &orderID,
		OrderNumber: order.OrderNumber,
		Status:      status,
	}
}

// NotificationService exposes a user's notifications and their read state.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. A notification
// owned by someone else is reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	return s.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
