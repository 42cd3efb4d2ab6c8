package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mod-compat/core/plugin"
	"mod-compat/feature/plugins"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadInventory reads a JSON array of plugin records.
func loadInventory(path string) ([]plugin.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	var records []plugin.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("inventory %s, record %d: %w", path, i, err)
		}
	}
	return records, nil
}

// loadMetadata reads a flat JSON object of lobby metadata.
func loadMetadata(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lobby metadata: %w", err)
	}

	var metadata map[string]string
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse lobby metadata %s: %w", path, err)
	}
	return metadata, nil
}

// registryFrom builds a registry holding records in order. Later duplicates replace earlier ones.
func registryFrom(records []plugin.Record) (*plugin.Registry, error) {
	reg := plugin.NewRegistry()
	for _, rec := range records {
		if err := reg.Register(rec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// restoreRegistry loads persisted registrations when a database is available.
func restoreRegistry(ctx context.Context, svc *plugins.Service, db *gorm.DB, logg *zap.Logger) {
	if db == nil {
		return
	}
	n, err := svc.Restore(ctx)
	if err != nil {
		logg.Warn("Failed to restore plugin registrations", zap.Error(err))
		return
	}
	logg.Info("Plugin registrations restored", zap.Int("count", n))
}
