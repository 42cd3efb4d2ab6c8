// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Storage: the metadata bucket exists and how many lobby objects it holds. Supports creating the bucket.
//   - Schema: plugin_registrations and lobby_metadata carry every expected column.
//   - Registry: the local inventory fits the metadata page budget, with page sizes and dropped plugins.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/registry : Runs the registry check.
package integrity
