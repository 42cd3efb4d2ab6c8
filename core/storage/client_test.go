package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"mod-compat/core/storage"
	"mod-compat/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "lobbies/a.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"k":"v"}`)), nil)

		data, err := storage.ReadObject(ctx, client, "bucket", "lobbies/a.json")
		require.NoError(t, err)
		assert.Equal(t, `{"k":"v"}`, string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "lobbies/b.json", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		_, err := storage.ReadObject(ctx, client, "bucket", "lobbies/b.json")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("OtherError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "lobbies/c.json", mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := storage.ReadObject(ctx, client, "bucket", "lobbies/c.json")
		assert.EqualError(t, err, "connection refused")
	})
}

func TestStatObject(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "bucket", "lobbies/a.json", mock.Anything).
		Return(minio.ObjectInfo{Key: "lobbies/a.json", Size: 9}, nil)
	client.On("StatObject", mock.Anything, "bucket", "lobbies/b.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	info, err := storage.StatObject(ctx, client, "bucket", "lobbies/a.json")
	require.NoError(t, err)
	assert.Equal(t, int64(9), info.Size)

	_, err = storage.StatObject(ctx, client, "bucket", "lobbies/b.json")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestListKeys(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "lobbies/a.json"}
	ch <- minio.ObjectInfo{Key: "lobbies/b.json"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(context.Background(), client, "bucket", "lobbies/")
	require.NoError(t, err)
	assert.Equal(t, []string{"lobbies/a.json", "lobbies/b.json"}, keys)
}

func TestListKeys_Error(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := storage.ListKeys(context.Background(), client, "bucket", "lobbies/")
	assert.ErrorContains(t, err, "denied")
}
