package handlers

import (
	"errors"
	"strconv"

	"afiyazone/internal/middleware"
	"afiyazone/internal/repositories"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the public product routes. Rating needs a
// logged-in user.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireUser fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/:id/rate", requireUser, h.HandleRateProduct)
}

// RegisterAdminRoutes registers product management under an admin group.
func (h *ProductHandler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/products", h.HandleListProducts)
	admin.Post("/products", h.HandleCreateProduct)
	admin.Put("/products/:id", h.HandleUpdateProduct)
	admin.Delete("/products/:id", h.HandleDeleteProduct)
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// HandleListProducts lists products matching the query filters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("isFeatured") == "true",
		SortBy:   c.Query("sortBy"),
	}
	var err error
	for key, dst := range map[string]**float64{
		"minPrice":  &filter.MinPrice,
		"maxPrice":  &filter.MaxPrice,
		"minRating": &filter.MinRating,
	} {
		if *dst, err = queryFloat(c, key); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid " + key,
			})
		}
	}

	products, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "Product not found", "Server error")
	}
	return c.JSON(product)
}

// HandleRateProduct stores the caller's rating of a product.
func (h *ProductHandler) HandleRateProduct(c *fiber.Ctx) error {
	var in struct {
		Rating int `json:"rating"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result, err := h.service.Rate(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c), in.Rating)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return notFoundOr(c, err, "Product not found", "Server error")
	}
	return c.JSON(fiber.Map{
		"message":      "Rating submitted successfully",
		"rating":       result.Rating,
		"totalRatings": result.TotalRatings,
	})
}

// HandleCreateProduct adds a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	product, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return internalError(c, "Server error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces a product's editable fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	product, err := h.service.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return notFoundOr(c, err, "Product not found", "Server error")
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(c, err, "Product not found", "Server error")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully", "id": id})
}
