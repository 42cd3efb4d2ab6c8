package cmd

import (
	"context"
	"fmt"

	"mod-compat/core/checksum"
	"mod-compat/core/config"
	"mod-compat/core/database"
	"mod-compat/core/logger"
	"mod-compat/core/plugin"
	"mod-compat/core/storage"
	"mod-compat/core/wire"
	"mod-compat/feature/integrity"
	"mod-compat/feature/plugins"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run health checks",
	Long:  `Checks the metadata bucket, the database schema and whether the registered inventory fits the metadata budget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and optionally create the metadata bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

var schemaCheckCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

var registryCheckCmd = &cobra.Command{
	Use:   "registry",
	Short: "Check that the registered inventory fits the metadata budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd, schemaCheckCmd, registryCheckCmd)
	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runStorage, runSchema, runRegistry bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	registry := plugin.NewRegistry()
	encoder := wire.NewEncoder(cfg.Compat.ReservedBytes, cfg.Compat.MaxPages)
	if db != nil {
		pluginSvc := plugins.NewService(registry, checksum.NewRegistryGenerator(registry), encoder, plugins.NewStore(db), logg)
		restoreRegistry(ctx, pluginSvc, db, logg)
	}

	svc := integrity.NewService(client, cfg.Storage, cfg.Compat.MetadataPrefix, db, registry, encoder, logg)

	if runStorage {
		logg.Info("Checking metadata bucket...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		switch {
		case report.Exists:
			logg.Info("Bucket is reachable.", zap.Int("lobbies", report.Lobbies))
		case fixFlag:
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
		default:
			logg.Warn("Bucket does not exist. Run with --fix to create it.")
		}
	}

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Schema matches expected definition.")
		} else {
			for table, tbl := range report.Tables {
				if tbl.Status != "ok" {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runRegistry {
		report := svc.CheckRegistry()
		fields := []zap.Field{
			zap.Int("plugins", report.Plugins),
			zap.Int("pages", report.Pages),
			zap.Strings("page_sizes", report.PageSizes),
			zap.String("budget", report.Budget),
		}
		if report.Publishable {
			logg.Info("Inventory fits the metadata budget.", fields...)
		} else {
			logg.Warn("Inventory exceeds the metadata budget", append(fields, zap.Strings("dropped", report.Dropped))...)
		}
	}

	return nil
}
