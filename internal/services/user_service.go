package services

import (
	"context"
	"errors"
	"fmt"

	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
)

// UserService manages profiles and, for admins, every account.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ProfileInput is the editable part of a profile.
type ProfileInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=50"`
}

// ChangePasswordInput is the body of a password change.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// CreateAdminInput is the body used by admins to add another admin.
type CreateAdminInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone" validate:"required,max=50"`
}

// AdminUpdateInput is an admin's edit of any account. An empty password
// leaves the current one in place.
type AdminUpdateInput struct {
	FirstName  string `json:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"max=50"`
	Role       string `json:"role" validate:"required"`
	Newsletter bool   `json:"newsletter"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

// Profile returns the account of userID.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile changes the caller's name and phone.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the caller's password after checking the old one.
func (s *UserService) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.Password, in.CurrentPassword) {
		return ErrWrongPassword
	}
	hashed, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.repo.Update(ctx, user)
}

// UpdateNotificationPreferences stores the caller's notification switches.
func (s *UserService) UpdateNotificationPreferences(ctx context.Context, userID string, prefs models.NotificationPreferences) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Notifications = prefs
	user.Newsletter = prefs.Newsletter
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// CreateAdmin adds an admin account.
func (s *UserService) CreateAdmin(ctx context.Context, in CreateAdminInput) (*models.User, error) {
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Password:      hashed,
		Phone:         in.Phone,
		Role:          models.RoleAdmin,
		Notifications: models.DefaultNotificationPreferences(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return user, nil
}

// AdminUpdate applies an admin's edit to any account, including its role.
func (s *UserService) AdminUpdate(ctx context.Context, id string, in AdminUpdateInput) (*models.User, error) {
	if in.Role != models.RoleUser && in.Role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	user.Role = in.Role
	user.Newsletter = in.Newsletter
	if in.Password != "" {
		hashed, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. The user's orders are kept.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// EnsureAdmin makes sure an admin with email exists. An existing non-admin
// account with that email is promoted; its password is left alone.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (created, promoted bool, err error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return false, false, nil
		}
		existing.Role = models.RoleAdmin
		if err := s.repo.Update(ctx, existing); err != nil {
			return false, false, err
		}
		return false, true, nil
	case errors.Is(err, repositories.ErrNotFound):
		_, err := s.CreateAdmin(ctx, CreateAdminInput{
			FirstName: "Admin",
			LastName:  "User",
			Email:     email,
			Password:  password,
			Phone:     "+1234567890",
		})
		if err != nil {
			return false, false, err
		}
		return true, false, nil
	default:
		return false, false, err
	}
}
