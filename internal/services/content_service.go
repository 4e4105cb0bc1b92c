package services

import (
	"context"
	"errors"

	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
)

// ErrMessageIncomplete is returned when a contact message lacks a required field.
var ErrMessageIncomplete = errors.New("Name, email and message are required")

// TeamService manages the about-us team listing.
type TeamService struct {
	repo repositories.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(repo repositories.TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// TeamMemberInput is the admin-editable part of a team member.
type TeamMemberInput struct {
	Name       models.LocalizedText `json:"name"`
	Position   models.LocalizedText `json:"position"`
	Bio        models.LocalizedText `json:"bio"`
	Image      string               `json:"image" validate:"required"`
	Email      string               `json:"email" validate:"omitempty,email"`
	Phone      string               `json:"phone"`
	Department string               `json:"department" validate:"required,oneof=management medical support marketing technical"`
	Order      int                  `json:"order"`
	IsActive   *bool                `json:"isActive"`
}

func (in TeamMemberInput) apply(m *models.TeamMember) {
	m.Name = in.Name
	m.Position = in.Position
	m.Bio = in.Bio
	m.Image = in.Image
	m.Email = in.Email
	m.Phone = in.Phone
	m.Department = in.Department
	m.Order = in.Order
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
}

// ListActive returns the members shown publicly.
func (s *TeamService) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns every member, active or not.
func (s *TeamService) ListAll(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.List(ctx, false)
}

// Create adds a team member. Members are active unless stated otherwise.
func (s *TeamService) Create(ctx context.Context, in TeamMemberInput) (*models.TeamMember, error) {
	member := &models.TeamMember{IsActive: true}
	in.apply(member)
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update replaces a team member's fields. An omitted isActive keeps the
// current value.
func (s *TeamService) Update(ctx context.Context, id string, in TeamMemberInput) (*models.TeamMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(member)
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a team member.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// MessageService stores and lists contact-form messages.
type MessageService struct {
	repo repositories.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// MessageInput is a contact-form submission.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a new contact message.
func (s *MessageService) Submit(ctx context.Context, in MessageInput) (*models.Message, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrMessageIncomplete
	}
	msg := &models.Message{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.MessageStatusNew,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.repo.List(ctx)
}
