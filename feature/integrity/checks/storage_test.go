package checks

import (
	"context"
	"errors"
	"testing"

	"mod-compat/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "lobbies/a.json"}
		ch <- minio.ObjectInfo{Key: "lobbies/b.json"}
		close(ch)
		client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "lobbies/", Recursive: true}).
			Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckStorage(ctx, client, "bucket", "lobbies")
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, 2, report.Lobbies)
		assert.Equal(t, "ok", report.Status)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)

		report, err := CheckStorage(ctx, client, "bucket", "lobbies")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Equal(t, "missing", report.Status)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, errors.New("dial tcp: refused"))

		_, err := CheckStorage(ctx, client, "bucket", "lobbies")
		assert.ErrorContains(t, err, "failed to check bucket existence")
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("MakeBucket", mock.Anything, "bucket", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	assert.NoError(t, FixStorage(context.Background(), client, "bucket", "eu-west-1", zap.NewNop()))
	client.AssertExpectations(t)
}
