package middleware

import (
	"context"
	"errors"
	"strings"

	"afiyazone/internal/logger"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	localUserID = "user_id"
	localUser   = "user"
)

// TokenVerifier resolves a bearer token to its user. *services.AuthService
// implements it.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// RequireAuth rejects requests without a valid bearer token. With role set
// to models.RoleAdmin it also loads the caller and requires the admin role.
func RequireAuth(verifier TokenVerifier, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		c.Locals(localUserID, userID)

		if role != models.RoleAdmin {
			return c.Next()
		}

		user, err := verifier.CurrentUser(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "User not found",
				})
			}
			logger.FromCtx(c.UserContext()).Error("failed to load user for admin check", zap.String("user_id", userID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied. Admin only.",
			})
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

// UserIDFrom returns the authenticated user's ID, or "" outside RequireAuth.
func UserIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// UserFrom returns the admin loaded by RequireAuth, or nil.
func UserFrom(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}
