package lobby

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"mod-compat/core/database"
	"mod-compat/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDBStore(t *testing.T) *DBStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store := NewDBStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestDBStore(t *testing.T) {
	ctx := context.Background()
	store := newDBStore(t)

	_, err := store.Metadata(ctx, "alpha")
	assert.ErrorIs(t, err, ErrLobbyNotFound)

	require.NoError(t, store.Replace(ctx, "beta", map[string]string{"plugins0": "a;1.0.0;e;n", "checksum": "X"}))
	require.NoError(t, store.Replace(ctx, "alpha", map[string]string{"modded": "true"}))

	meta, err := store.Metadata(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"plugins0": "a;1.0.0;e;n", "checksum": "X"}, meta)

	// Replace drops keys missing from the new map.
	require.NoError(t, store.Replace(ctx, "beta", map[string]string{"checksum": "Y"}))
	meta, err = store.Metadata(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"checksum": "Y"}, meta)

	ids, err := store.Lobbies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, ids)

	require.NoError(t, store.Delete(ctx, "alpha"))
	assert.ErrorIs(t, store.Delete(ctx, "alpha"), ErrLobbyNotFound)
}

func TestObjectStore_Metadata(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "bucket", "/lobbies/")

	client.On("GetObject", mock.Anything, "bucket", "lobbies/room%201.json", mock.Anything).
		Return(io.NopCloser(bytes.NewBufferString(`{"checksum":"X"}`)), nil)
	client.On("GetObject", mock.Anything, "bucket", "lobbies/gone.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("GetObject", mock.Anything, "bucket", "lobbies/bad.json", mock.Anything).
		Return(io.NopCloser(bytes.NewBufferString(`[1,2]`)), nil)

	meta, err := store.Metadata(ctx, "room 1")
	require.NoError(t, err)
	assert.Equal(t, "X", meta["checksum"])

	_, err = store.Metadata(ctx, "gone")
	assert.ErrorIs(t, err, ErrLobbyNotFound)

	_, err = store.Metadata(ctx, "bad")
	assert.ErrorContains(t, err, "corrupt metadata object")
}

func TestObjectStore_Replace(t *testing.T) {
	client := new(mocks.Client)
	store := NewObjectStore(client, "bucket", "lobbies")

	client.On("PutObject", mock.Anything, "bucket", "lobbies/abc.json", mock.Anything, int64(16), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil)

	require.NoError(t, store.Replace(context.Background(), "abc", map[string]string{"checksum": "X"}))
	client.AssertExpectations(t)
}

func TestObjectStore_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "bucket", "lobbies")

	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "lobbies/b.json"}
	ch <- minio.ObjectInfo{Key: "lobbies/a%2Fx.json"}
	ch <- minio.ObjectInfo{Key: "lobbies/readme.txt"}
	ch <- minio.ObjectInfo{Key: "lobbies/nested/c.json"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	client.On("StatObject", mock.Anything, "bucket", "lobbies/b.json", mock.Anything).Return(minio.ObjectInfo{Key: "lobbies/b.json"}, nil)
	client.On("StatObject", mock.Anything, "bucket", "lobbies/z.json", mock.Anything).Return(minio.ObjectInfo{Key: "lobbies/z.json"}, nil)
	client.On("StatObject", mock.Anything, "bucket", "lobbies/gone.json", mock.Anything).Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("StatObject", mock.Anything, "bucket", "lobbies/locked.json", mock.Anything).Return(nil, errors.New("timeout"))
	client.On("RemoveObject", mock.Anything, "bucket", "lobbies/b.json", mock.Anything).Return(nil)
	client.On("RemoveObject", mock.Anything, "bucket", "lobbies/z.json", mock.Anything).Return(errors.New("denied"))

	ids, err := store.Lobbies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x", "b"}, ids)

	assert.NoError(t, store.Delete(ctx, "b"))
	assert.ErrorContains(t, store.Delete(ctx, "z"), "denied")
	assert.ErrorIs(t, store.Delete(ctx, "gone"), ErrLobbyNotFound)
	assert.ErrorContains(t, store.Delete(ctx, "locked"), "timeout")
	client.AssertNotCalled(t, "RemoveObject", mock.Anything, "bucket", "lobbies/gone.json", mock.Anything)
}
