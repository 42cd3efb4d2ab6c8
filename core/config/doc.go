// Package config loads application settings from the environment.
//
// A .env file is read first (godotenv), then every key of Config is registered with
// Viper using the struct's `default` tags so that environment variables such as
// COMPAT_MAX_PAGES or DATABASE_DRIVER override them.
//
// Sections:
//   - Server: port, API key and role (host or client)
//   - Database: MySQL or SQLite connection
//   - Storage: S3/MinIO credentials used by the storage metadata backend
//   - Log: level and format
//   - Compat: metadata page budget, page limit, diff cache size and TTL, metadata backend
//
//	cfg, err := config.LoadConfig(".")
package config
