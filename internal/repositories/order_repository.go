package repositories

import (
	"context"

	"afiyazone/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	LockByID(ctx context.Context, id string) (*models.Order, error)
	GetForUser(ctx context.Context, id, userID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	SearchByNumber(ctx context.Context, term string) ([]models.Order, error)
	ExistsByNumber(ctx context.Context, orderNumber string) (bool, error)
	UpdateStatus(ctx context.Context, id, status, updatedBy string) error
	Delete(ctx context.Context, id string) error
}
