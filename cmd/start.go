package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mod-compat/core/checksum"
	"mod-compat/core/config"
	"mod-compat/core/database"
	"mod-compat/core/loader"
	"mod-compat/core/logger"
	"mod-compat/core/middleware/auth"
	"mod-compat/core/middleware/rayid"
	"mod-compat/core/plugin"
	"mod-compat/core/reconcile"
	"mod-compat/core/storage"
	"mod-compat/core/wire"

	"mod-compat/feature/integrity"
	"mod-compat/feature/lobby"
	"mod-compat/feature/plugins"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "mod-compat/docs/swagger"
)

// @title Mod Compat API
// @version 1.0
// @description Plugin inventory publishing and lobby compatibility checks.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the compatibility server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidRole() {
			logg.Fatal("Invalid server role", zap.String("role", cfg.Server.Role))
		}
		if !cfg.Compat.IsValidBackend() {
			logg.Fatal("Invalid metadata backend", zap.String("backend", cfg.Compat.MetadataBackend))
		}
		logg = logg.With(zap.String("role", cfg.Server.Role))

		// Database is optional unless it holds lobby metadata.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			if cfg.Compat.MetadataBackend == reconcile.BackendDatabase {
				logg.Fatal("Database connection required by the metadata backend", zap.Error(err))
			}
			logg.Warn("Optional database connection failed, registrations will not persist", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// Domain wiring
		registry := plugin.NewRegistry()
		generator := checksum.NewRegistryGenerator(registry)
		encoder := wire.NewEncoder(cfg.Compat.ReservedBytes, cfg.Compat.MaxPages)

		var registrations *plugins.Store
		if db != nil {
			registrations = plugins.NewStore(db)
			if err := registrations.Migrate(); err != nil {
				logg.Fatal("Failed to migrate plugin registrations", zap.Error(err))
			}
		}
		pluginSvc := plugins.NewService(registry, generator, encoder, registrations, logg)
		restoreRegistry(context.Background(), pluginSvc, db, logg)

		var metadata lobby.MetadataStore
		switch cfg.Compat.MetadataBackend {
		case reconcile.BackendStorage:
			metadata = lobby.NewObjectStore(client, cfg.Storage.Bucket, cfg.Compat.MetadataPrefix)
		default:
			dbStore := lobby.NewDBStore(db)
			if err := dbStore.Migrate(); err != nil {
				logg.Fatal("Failed to migrate lobby metadata", zap.Error(err))
			}
			metadata = dbStore
		}

		reconciler := reconcile.NewRegistryReconciler(registry, metadata, cfg.Compat.NewCache())
		lobbySvc := lobby.NewService(metadata, registry, generator, encoder, reconciler, logg)
		integritySvc := integrity.NewService(client, cfg.Storage, cfg.Compat.MetadataPrefix, db, registry, encoder, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(plugins.NewFeature(pluginSvc))
		mgr.Register(lobby.NewFeature(lobbySvc, cfg.Server.IsHost()))
		mgr.Register(integrity.NewFeature(integritySvc))

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Int("page_budget", encoder.PageBudget),
				zap.Int("max_pages", encoder.MaxPages),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
