package models

import (
	"time"

	"mod-compat/core/plugin"
)

// PluginRegistration is a plugin registered at runtime and restored on start.
// Rows are loaded in ID order so re-registrations keep their original position.
type PluginRegistration struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID       string    `gorm:"column:guid;type:varchar(191);uniqueIndex;not null"`
	Version    string    `gorm:"column:version;type:varchar(64);not null"`
	Level      string    `gorm:"column:level;type:varchar(32);not null"`
	Strictness string    `gorm:"column:strictness;type:varchar(16);not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (PluginRegistration) TableName() string {
	return "plugin_registrations"
}

// FromRecord converts a plugin record into its row representation.
func FromRecord(r plugin.Record) PluginRegistration {
	return PluginRegistration{
		GUID:       r.GUID,
		Version:    r.Version.String(),
		Level:      string(r.Level),
		Strictness: string(r.Strictness),
	}
}

// Record converts the row back into a plugin record.
func (p PluginRegistration) Record() (plugin.Record, error) {
	v, err := plugin.ParseVersion(p.Version)
	if err != nil {
		return plugin.Record{}, err
	}
	return plugin.Record{
		GUID:       p.GUID,
		Version:    v,
		Level:      plugin.CompatibilityLevel(p.Level),
		Strictness: plugin.VersionStrictness(p.Strictness),
	}, nil
}

// LobbyMetadataEntry is one key of a lobby's metadata.
type LobbyMetadataEntry struct {
	LobbyID string `gorm:"column:lobby_id;type:varchar(191);primaryKey"`
	Key     string `gorm:"column:meta_key;type:varchar(191);primaryKey"`
	Value   string `gorm:"column:value;type:text"`
}

func (LobbyMetadataEntry) TableName() string {
	return "lobby_metadata"
}

// Tables maps every table the service migrates to its expected columns.
func Tables() map[string][]string {
	return map[string][]string{
		PluginRegistration{}.TableName(): {"id", "guid", "version", "level", "strictness", "created_at", "updated_at"},
		LobbyMetadataEntry{}.TableName(): {"lobby_id", "meta_key", "value"},
	}
}

// All returns a value of every model for AutoMigrate.
func All() []any {
	return []any{&PluginRegistration{}, &LobbyMetadataEntry{}}
}
