package checks

import (
	"testing"

	"mod-compat/core/database"
	"mod-compat/feature/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, models.Tables())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	report, err := CheckSchema(db, models.Tables())
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["plugin_registrations"].Status)
	assert.Equal(t, "ok", report.Tables["lobby_metadata"].Status)
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `lobby_metadata`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("lobby_id", "varchar(191)", "NO", "PRI", nil, "").
			AddRow("meta_key", "varchar(191)", "NO", "PRI", nil, ""))
	mock.ExpectQuery("SHOW COLUMNS FROM `plugin_registrations`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db, models.Tables())
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"value"}, report.Tables["lobby_metadata"].MissingColumns)
	assert.Equal(t, "error", report.Tables["plugin_registrations"].Status)
	assert.Len(t, report.Errors, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
