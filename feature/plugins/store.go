package plugins

import (
	"context"
	"fmt"

	"mod-compat/core/plugin"
	"mod-compat/feature/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists plugin registrations.
type Store struct {
	db *gorm.DB
}

// NewStore creates a registration store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the registrations table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.PluginRegistration{})
}

// Load returns the stored registrations in their original registration order.
func (s *Store) Load(ctx context.Context) ([]plugin.Record, error) {
	var rows []models.PluginRegistration
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load plugin registrations: %w", err)
	}

	records := make([]plugin.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.Record()
		if err != nil {
			return nil, fmt.Errorf("registration %s: %w", row.GUID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save upserts a registration. An existing row keeps its id and therefore its position.
func (s *Store) Save(ctx context.Context, rec plugin.Record) error {
	row := models.FromRecord(rec)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guid"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "level", "strictness", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save plugin %s: %w", rec.GUID, err)
	}
	return nil
}

// Delete removes a registration. Deleting an unknown guid is not an error.
func (s *Store) Delete(ctx context.Context, guid string) error {
	if err := s.db.WithContext(ctx).Where("guid = ?", guid).Delete(&models.PluginRegistration{}).Error; err != nil {
		return fmt.Errorf("failed to delete plugin %s: %w", guid, err)
	}
	return nil
}
