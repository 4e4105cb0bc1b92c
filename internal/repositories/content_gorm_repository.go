package repositories

import (
	"context"
	"fmt"

	"afiyazone/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTeamRepository is a GORM implementation of TeamRepository.
type GORMTeamRepository struct {
	db *gorm.DB
}

// NewGORMTeamRepository creates a new instance of GORMTeamRepository.
func NewGORMTeamRepository(db *gorm.DB) *GORMTeamRepository {
	return &GORMTeamRepository{db: db}
}

// List returns team members by display order, then newest first.
func (r *GORMTeamRepository) List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var members []models.TeamMember
	if err := q.Order("sort_order ASC").Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// Create creates a new team member.
func (r *GORMTeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

// GetByID retrieves a team member by its ID.
func (r *GORMTeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("team member with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team member by ID: %w", err)
	}
	return &member, nil
}

// Update overwrites every editable column of a team member.
func (r *GORMTeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	res := r.db.WithContext(ctx).Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(member)
	if res.Error != nil {
		return fmt.Errorf("failed to update team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("team member with ID %s not found for update: %w", member.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a team member.
func (r *GORMTeamRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("team member with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{db: db}
}

// Create stores a contact message.
func (r *GORMMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Status == "" {
		message.Status = models.MessageStatusNew
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// List returns every message, newest first.
func (r *GORMMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
