package lobby

import (
	"context"
	"fmt"

	"mod-compat/feature/models"

	"gorm.io/gorm"
)

// DBStore keeps lobby metadata in the lobby_metadata table, one row per key.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a database backed metadata store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates the metadata table.
func (s *DBStore) Migrate() error {
	return s.db.AutoMigrate(&models.LobbyMetadataEntry{})
}

func (s *DBStore) Metadata(ctx context.Context, lobbyID string) (map[string]string, error) {
	var rows []models.LobbyMetadataEntry
	if err := s.db.WithContext(ctx).Where("lobby_id = ?", lobbyID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read metadata of lobby %s: %w", lobbyID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID)
	}

	metadata := make(map[string]string, len(rows))
	for _, row := range rows {
		metadata[row.Key] = row.Value
	}
	return metadata, nil
}

// Replace swaps every row of the lobby in one transaction.
func (s *DBStore) Replace(ctx context.Context, lobbyID string, metadata map[string]string) error {
	rows := make([]models.LobbyMetadataEntry, 0, len(metadata))
	for k, v := range metadata {
		rows = append(rows, models.LobbyMetadataEntry{LobbyID: lobbyID, Key: k, Value: v})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lobby_id = ?", lobbyID).Delete(&models.LobbyMetadataEntry{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write metadata of lobby %s: %w", lobbyID, err)
	}
	return nil
}

func (s *DBStore) Delete(ctx context.Context, lobbyID string) error {
	res := s.db.WithContext(ctx).Where("lobby_id = ?", lobbyID).Delete(&models.LobbyMetadataEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete lobby %s: %w", lobbyID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID)
	}
	return nil
}

func (s *DBStore) Lobbies(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.LobbyMetadataEntry{}).
		Distinct("lobby_id").Order("lobby_id").Pluck("lobby_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lobbies: %w", err)
	}
	return ids, nil
}
