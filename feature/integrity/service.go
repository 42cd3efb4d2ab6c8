package integrity

import (
	"context"

	"mod-compat/core/plugin"
	"mod-compat/core/storage"
	"mod-compat/core/wire"
	"mod-compat/feature/integrity/checks"
	"mod-compat/feature/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs infrastructure and inventory health checks.
type Service struct {
	client   storage.Client
	storage  storage.Config
	prefix   string
	db       *gorm.DB
	registry *plugin.Registry
	encoder  *wire.Encoder
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil when no database is configured.
func NewService(client storage.Client, cfg storage.Config, prefix string, db *gorm.DB, registry *plugin.Registry, encoder *wire.Encoder, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		storage:  cfg,
		prefix:   prefix,
		db:       db,
		registry: registry,
		encoder:  encoder,
		logger:   logger,
	}
}

// CheckStorage reports on the metadata bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.storage.Bucket, s.prefix)
}

// FixStorage creates the metadata bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.storage.Bucket, s.storage.Region, s.logger)
}

// CheckSchema verifies the tables the service migrates.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Tables())
}

// CheckRegistry reports whether the local inventory fits the metadata budget.
func (s *Service) CheckRegistry() checks.RegistryReport {
	return checks.CheckRegistry(s.registry.List(), s.encoder)
}
