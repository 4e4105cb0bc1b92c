package handlers

import (
	"errors"

	"afiyazone/internal/middleware"
	"afiyazone/internal/models"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login and the caller's own profile.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// RegisterRoutes registers the auth routes. limiter guards the credential
// endpoints and requireUser the profile ones.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, limiter, requireUser fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", limiter, h.HandleRegister)
	authRoutes.Post("/login", limiter, h.HandleLogin)
	authRoutes.Get("/profile", requireUser, h.HandleGetProfile)
	authRoutes.Put("/profile", requireUser, h.HandleUpdateProfile)
	authRoutes.Post("/change-password", requireUser, h.HandleChangePassword)
	authRoutes.Put("/notifications", requireUser, h.HandleUpdateNotifications)
}

// HandleRegister creates a customer account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.RegisterInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	result, err := h.authService.Register(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return internalError(c, "Server error during registration", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleLogin authenticates a user and returns a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	result, err := h.authService.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		return internalError(c, "Server error during login", err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleGetProfile returns the caller's account.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.Profile(c.UserContext(), middleware.UserIDFrom(c))
	if err != nil {
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(user)
}

// HandleUpdateProfile changes the caller's name and phone.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var in services.ProfileInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), middleware.UserIDFrom(c), in)
	if err != nil {
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// HandleChangePassword replaces the caller's password.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var in services.ChangePasswordInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	if err := h.userService.ChangePassword(c.UserContext(), middleware.UserIDFrom(c), in); err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// HandleUpdateNotifications stores the caller's notification preferences.
func (h *AuthHandler) HandleUpdateNotifications(c *fiber.Ctx) error {
	var prefs models.NotificationPreferences
	if ok, err := parseBody(c, &prefs); !ok {
		return err
	}

	user, err := h.userService.UpdateNotificationPreferences(c.UserContext(), middleware.UserIDFrom(c), prefs)
	if err != nil {
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(fiber.Map{
		"message":       "Notification preferences updated",
		"notifications": user.Notifications,
	})
}
