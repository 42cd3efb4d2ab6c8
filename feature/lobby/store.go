package lobby

import (
	"context"
	"errors"
)

// ErrLobbyNotFound is returned when a lobby has no stored metadata.
var ErrLobbyNotFound = errors.New("lobby not found")

// MetadataStore persists lobby metadata. It satisfies reconcile.MetadataSource.
type MetadataStore interface {
	// Metadata returns the lobby's metadata or ErrLobbyNotFound.
	Metadata(ctx context.Context, lobbyID string) (map[string]string, error)
	// Replace overwrites the lobby's metadata.
	Replace(ctx context.Context, lobbyID string, metadata map[string]string) error
	// Delete removes the lobby.
	Delete(ctx context.Context, lobbyID string) error
	// Lobbies lists the stored lobby ids in a stable order.
	Lobbies(ctx context.Context) ([]string, error)
}
