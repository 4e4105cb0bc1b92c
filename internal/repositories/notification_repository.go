package repositories

import (
	"context"

	"afiyazone/internal/models"
)

// NotificationRepository defines the interface for notification data access.
// Every read and mutation is scoped to the owning user.
type NotificationRepository interface {
	CreateMany(ctx context.Context, notifications []models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
