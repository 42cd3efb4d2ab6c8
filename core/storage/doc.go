// Package storage wraps the MinIO client used by the storage metadata backend.
//
// Client is the narrow interface the service depends on, so tests substitute
// mocks.Client. ReadObject and ListKeys add the error translation and listing loop the
// lobby metadata store needs; a missing object surfaces as ErrObjectNotFound.
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "lobbies/abc.json")
package storage
