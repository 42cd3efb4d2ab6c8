package lobby

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"mod-compat/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps each lobby's metadata as a JSON object at <prefix>/<id>.json.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates an object storage backed metadata store.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *ObjectStore) key(lobbyID string) string {
	return s.prefix + "/" + url.PathEscape(lobbyID) + ".json"
}

func (s *ObjectStore) Metadata(ctx context.Context, lobbyID string) (map[string]string, error) {
	data, err := storage.ReadObject(ctx, s.client, s.bucket, s.key(lobbyID))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID)
		}
		return nil, fmt.Errorf("failed to read metadata of lobby %s: %w", lobbyID, err)
	}

	var metadata map[string]string
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("corrupt metadata object for lobby %s: %w", lobbyID, err)
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	return metadata, nil
}

func (s *ObjectStore) Replace(ctx context.Context, lobbyID string, metadata map[string]string) error {
	data, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.key(lobbyID), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to write metadata of lobby %s: %w", lobbyID, err)
	}
	return nil
}

// Delete removes the lobby object. Object stores accept removing a missing key, so the
// object is looked up first.
func (s *ObjectStore) Delete(ctx context.Context, lobbyID string) error {
	if _, err := storage.StatObject(ctx, s.client, s.bucket, s.key(lobbyID)); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID)
		}
		return fmt.Errorf("failed to look up lobby %s: %w", lobbyID, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, s.key(lobbyID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete lobby %s: %w", lobbyID, err)
	}
	return nil
}

func (s *ObjectStore) Lobbies(ctx context.Context) ([]string, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.prefix+"/")
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimPrefix(key, s.prefix+"/")
		if !strings.HasSuffix(name, ".json") || strings.Contains(name, "/") {
			continue
		}
		id, err := url.PathUnescape(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
