// Package database handles database connections and schema inspection.
//
// Connect wraps GORM and opens either MySQL (production) or SQLite (single node and
// tests) based on Config.Driver. Plugin registrations and, with the database metadata
// backend, lobby metadata are stored through the returned *gorm.DB.
//
// The inspector helpers (GetTableColumns, MissingColumns) back the schema integrity
// check that verifies the tables the features migrate.
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "lobby_metadata", []string{"lobby_id", "meta_key", "value"})
package database
