package handlers

import (
	"errors"

	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the team listing and the contact form.
type ContentHandler struct {
	team     *services.TeamService
	messages *services.MessageService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(team *services.TeamService, messages *services.MessageService) *ContentHandler {
	return &ContentHandler{team: team, messages: messages}
}

// RegisterRoutes registers the public team and message routes.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/team", h.HandleListActiveTeam)
	router.Post("/messages", h.HandleSubmitMessage)
}

// RegisterAdminRoutes registers team and message management.
func (h *ContentHandler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/team", h.HandleListTeam)
	admin.Post("/team", h.HandleCreateTeamMember)
	admin.Put("/team/:id", h.HandleUpdateTeamMember)
	admin.Delete("/team/:id", h.HandleDeleteTeamMember)
	admin.Get("/messages", h.HandleListMessages)
}

// HandleListActiveTeam lists the members shown on the about-us page.
func (h *ContentHandler) HandleListActiveTeam(c *fiber.Ctx) error {
	members, err := h.team.ListActive(c.UserContext())
	if err != nil {
		return internalError(c, "Error fetching team members", err)
	}
	return c.JSON(fiber.Map{"count": len(members), "teamMembers": members})
}

// HandleListTeam lists every member for admins.
func (h *ContentHandler) HandleListTeam(c *fiber.Ctx) error {
	members, err := h.team.ListAll(c.UserContext())
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": len(members), "teamMembers": members})
}

// HandleCreateTeamMember adds a team member.
func (h *ContentHandler) HandleCreateTeamMember(c *fiber.Ctx) error {
	var in services.TeamMemberInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	member, err := h.team.Create(c.UserContext(), in)
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// HandleUpdateTeamMember edits a team member.
func (h *ContentHandler) HandleUpdateTeamMember(c *fiber.Ctx) error {
	var in services.TeamMemberInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	member, err := h.team.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return notFoundOr(c, err, "Team member not found", "Server error")
	}
	return c.JSON(member)
}

// HandleDeleteTeamMember removes a team member.
func (h *ContentHandler) HandleDeleteTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.team.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(c, err, "Team member not found", "Server error")
	}
	return c.JSON(fiber.Map{"message": "Team member deleted successfully", "id": id})
}

// HandleSubmitMessage stores a contact-form message.
func (h *ContentHandler) HandleSubmitMessage(c *fiber.Ctx) error {
	var in services.MessageInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	msg, err := h.messages.Submit(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, services.ErrMessageIncomplete) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return internalError(c, "Server error creating message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message received",
		"data":    msg,
	})
}

// HandleListMessages lists contact messages for admins.
func (h *ContentHandler) HandleListMessages(c *fiber.Ctx) error {
	messages, err := h.messages.List(c.UserContext())
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": len(messages), "messages": messages})
}
