package repositories

import (
	"context"

	"afiyazone/internal/models"
)

// TeamRepository defines the interface for team member data access.
type TeamRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository defines the interface for contact message data access.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
}
