package app

import (
	"context"
	"errors"

	"afiyazone/internal/config"
	"afiyazone/internal/handlers"
	"afiyazone/internal/logger"
	"afiyazone/internal/middleware"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the external resources the HTTP application runs on.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Publisher services.EventPublisher // nil disables event publishing
}

// New wires repositories, services and handlers into a Fiber app. ctx bounds
// background work such as the rate limiter's cleanup.
func New(ctx context.Context, deps Deps) *fiber.App {
	cfg := deps.Config

	userRepo := repositories.NewGORMUserRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)
	notificationRepo := repositories.NewGORMNotificationRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	teamRepo := repositories.NewGORMTeamRepository(deps.DB)
	messageRepo := repositories.NewGORMMessageRepository(deps.DB)
	statisticsRepo := repositories.NewGORMStatisticsRepository(deps.DB)
	store := repositories.NewGORMStore(deps.DB)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn)
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(store, orderRepo, deps.Publisher, services.OrderServiceConfig{
		NumberPrefix: cfg.OrderNumberPrefix,
		VerifyTotals: cfg.VerifyOrderTotals,
	})
	notificationService := services.NewNotificationService(notificationRepo)
	productService := services.NewProductService(productRepo, store)
	teamService := services.NewTeamService(teamRepo)
	messageService := services.NewMessageService(messageRepo)
	statisticsService := services.NewStatisticsService(statisticsRepo)

	authHandler := handlers.NewAuthHandler(authService, userService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	contentHandler := handlers.NewContentHandler(teamService, messageService)
	adminHandler := handlers.NewAdminHandler(userService, statisticsService)

	app := fiber.New(fiber.Config{
		AppName:      "Afiya Zone API",
		ErrorHandler: errorHandler(cfg.IsDevelopment()),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestContext())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New())
	if cfg.IsDevelopment() {
		app.Use(handlers.ExposeErrors())
	}

	requireUser := middleware.RequireAuth(authService, "")
	requireAdmin := middleware.RequireAuth(authService, models.RoleAdmin)
	authLimiter := middleware.NewRateLimiter(ctx, cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := app.Group("/api")
	api.Get("/health", handlers.HandleHealth)

	authHandler.RegisterRoutes(api, authLimiter.Handler(), requireUser)
	productHandler.RegisterRoutes(api, requireUser)
	orderHandler.RegisterRoutes(api, requireUser)
	notificationHandler.RegisterRoutes(api, requireUser)
	contentHandler.RegisterRoutes(api)

	admin := api.Group("/admin", requireAdmin)
	adminHandler.RegisterAdminRoutes(admin)
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	contentHandler.RegisterAdminRoutes(admin)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})

	return app
}

// errorHandler answers errors no handler dealt with.
func errorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		logger.FromCtx(c.UserContext()).Error("unhandled error",
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", code),
			zap.Error(err))

		body := fiber.Map{"message": "Something went wrong!"}
		if development {
			body["error"] = err.Error()
		}
		return c.Status(code).JSON(body)
	}
}
