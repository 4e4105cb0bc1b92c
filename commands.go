package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"afiyazone/internal/app"
	"afiyazone/internal/config"
	"afiyazone/internal/database"
	"afiyazone/internal/logger"
	"afiyazone/internal/repositories"
	"afiyazone/internal/services"
	"afiyazone/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@afiyazone.com"
	defaultAdminPassword = "Admin@123"
)

// bootstrap loads configuration, sets up logging and opens the migrated
// database. Every command starts here.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.AppEnv)

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return serve(cmd.Context(), cfg, db)
		},
	}
}

func serve(parent context.Context, cfg *config.Config, db *gorm.DB) error {
	log := logger.L()
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return err
		}
		defer mqClient.Close()

		if err := mqClient.ConsumeOrderEvents(rabbitmq.LogOrderEvent); err != nil {
			log.Warn("failed to start order event consumer", zap.Error(err))
		}
		publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set, order events will not be published")
	}

	fiberApp := app.New(ctx, app.Deps{Config: cfg, DB: db, Publisher: publisher})

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("env", cfg.AppEnv))
		errCh <- fiberApp.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := fiberApp.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server gracefully stopped")
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := bootstrap(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account, or promote an existing user to admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			users := services.NewUserService(repositories.NewGORMUserRepository(db))
			return createAdmin(cmd, users, email, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", defaultAdminEmail, "Admin email")
	cmd.Flags().StringVar(&password, "password", defaultAdminPassword, "Admin password (used only when the account is created)")
	return cmd
}

func createAdmin(cmd *cobra.Command, users *services.UserService, email, password string) error {
	created, promoted, err := users.EnsureAdmin(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	out := cmd.OutOrStdout()
	switch {
	case created:
		fmt.Fprintf(out, "Admin user created successfully\nEmail: %s\n", email)
	case promoted:
		fmt.Fprintln(out, "Updated existing user to admin role")
	default:
		fmt.Fprintln(out, "Admin user already exists")
	}
	return nil
}

func newSeedProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-products",
		Short: "Load the starter catalog into an empty product table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			return seedProducts(cmd, repositories.NewGORMProductRepository(db))
		},
	}
}

func seedProducts(cmd *cobra.Command, repo repositories.ProductRepository) error {
	n, err := services.SeedCatalog(cmd.Context(), repo)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Products already exist, nothing to seed")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products\n", n)
	return nil
}
