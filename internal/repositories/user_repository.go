package repositories

import (
	"context"

	"afiyazone/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListAdminIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
