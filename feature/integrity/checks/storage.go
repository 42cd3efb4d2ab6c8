package checks

import (
	"context"
	"fmt"

	"mod-compat/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the metadata bucket.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Lobbies int    `json:"lobbies"`
	Status  string `json:"status"` // "ok", "missing"
}

// CheckStorage verifies the bucket exists and counts the lobby objects under prefix.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &StorageReport{Bucket: bucket, Exists: exists, Status: "missing"}
	if !exists {
		return report, nil
	}

	keys, err := storage.ListKeys(ctx, client, bucket, prefix+"/")
	if err != nil {
		return nil, err
	}
	report.Lobbies = len(keys)
	report.Status = "ok"
	return report, nil
}

// FixStorage creates the bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
