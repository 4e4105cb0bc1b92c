package handlers

import (
	"errors"

	"afiyazone/internal/middleware"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer order routes behind requireUser.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, requireUser fiber.Handler) {
	orderRoutes := router.Group("/orders", requireUser)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/my-orders", h.HandleGetMyOrders)
	orderRoutes.Get("/:id", h.HandleGetMyOrder)
}

// RegisterAdminRoutes registers order management under an admin group.
func (h *OrderHandler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/orders", h.HandleListOrders)
	admin.Get("/orders/search/:orderNumber", h.HandleSearchOrders)
	admin.Put("/orders/:id", h.HandleUpdateOrderStatus)
	admin.Delete("/orders/:id", h.HandleDeleteOrder)
}

// HandleCreateOrder places an order for the caller.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var in services.CreateOrderInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	order, err := h.service.Create(c.UserContext(), middleware.UserIDFrom(c), in)
	if err != nil {
		if errors.Is(err, services.ErrTotalsMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Order totals do not match the items",
				"error":   err.Error(),
			})
		}
		return internalError(c, "Server error creating order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Order created successfully",
		"orderNumber": order.OrderNumber,
		"orderId":     order.ID,
		"order":       order,
	})
}

// HandleGetMyOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListForUser(c.UserContext(), middleware.UserIDFrom(c))
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(orders)
}

// HandleGetMyOrder returns one of the caller's orders.
func (h *OrderHandler) HandleGetMyOrder(c *fiber.Ctx) error {
	order, err := h.service.GetForUser(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c))
	if err != nil {
		return notFoundOr(c, err, "Order not found", "Server error")
	}
	return c.JSON(order)
}

// HandleListOrders lists every order for admins.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": len(orders), "orders": orders})
}

// HandleSearchOrders finds orders by a fragment of their number.
func (h *OrderHandler) HandleSearchOrders(c *fiber.Ctx) error {
	orders, err := h.service.Search(c.UserContext(), c.Params("orderNumber"))
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(fiber.Map{"count": len(orders), "orders": orders})
}

// HandleUpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status" validate:"required"`
	}
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	order, _, err := h.service.UpdateStatus(c.UserContext(), middleware.UserIDFrom(c), c.Params("id"), in.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return notFoundOr(c, err, "Order not found", "Server error")
	}
	return c.JSON(order.ToAdmin())
}

// HandleDeleteOrder removes an order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(c, err, "Order not found", "Server error")
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully", "id": id})
}
