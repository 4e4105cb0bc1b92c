package handlers

import (
	"errors"

	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves account management and the dashboard.
type AdminHandler struct {
	users      *services.UserService
	statistics *services.StatisticsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users *services.UserService, statistics *services.StatisticsService) *AdminHandler {
	return &AdminHandler{users: users, statistics: statistics}
}

// RegisterAdminRoutes registers user management and statistics.
func (h *AdminHandler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/users", h.HandleListUsers)
	admin.Post("/users/admin", h.HandleCreateAdmin)
	admin.Put("/users/:id", h.HandleUpdateUser)
	admin.Delete("/users/:id", h.HandleDeleteUser)
	admin.Get("/statistics", h.HandleStatistics)
}

// HandleListUsers lists every account, newest first.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": len(users), "users": users})
}

// HandleCreateAdmin adds an admin account.
func (h *AdminHandler) HandleCreateAdmin(c *fiber.Ctx) error {
	var in services.CreateAdminInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	user, err := h.users.CreateAdmin(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return internalError(c, "Server error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser edits any account.
func (h *AdminHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var in services.AdminUpdateInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	user, err := h.users.AdminUpdate(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(user)
}

// HandleDeleteUser removes an account. Its orders stay.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.users.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(c, err, "User not found", "Server error")
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully", "id": id})
}

// HandleStatistics returns the dashboard counts.
func (h *AdminHandler) HandleStatistics(c *fiber.Ctx) error {
	stats, err := h.statistics.Dashboard(c.UserContext())
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(stats)
}
