package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"mod-compat/core/plugin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadInventory(t *testing.T) {
	path := writeFile(t, "inventory.json", `[
		{"guid":"maps","version":"1.2.3","level":"everyone","strictness":"minor"},
		{"guid":"ui","version":"v2"}
	]`)

	records, err := loadInventory(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, plugin.LevelEveryone, records[0].Level)
	assert.Equal(t, "2.0.0", records[1].Version.String())
	assert.False(t, records[1].Attributed())
}

func TestLoadInventory_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"NotJSON", `nope`},
		{"BadVersion", `[{"guid":"a","version":"x.y"}]`},
		{"BadLevel", `[{"guid":"a","version":"1","level":"all"}]`},
		{"ReservedGUID", `[{"guid":"a@b","version":"1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadInventory(writeFile(t, "inventory.json", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadInventory(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadMetadata(t *testing.T) {
	meta, err := loadMetadata(writeFile(t, "lobby.json", `{"plugins0":"a;1.0.0;e;n","checksum":"X"}`))
	require.NoError(t, err)
	assert.Equal(t, "X", meta["checksum"])

	_, err = loadMetadata(writeFile(t, "lobby.json", `{"plugins0":1}`))
	assert.Error(t, err)
}

func TestRegistryFrom_LastWins(t *testing.T) {
	reg, err := registryFrom([]plugin.Record{
		{GUID: "a", Version: plugin.MustParseVersion("1")},
		{GUID: "b", Version: plugin.MustParseVersion("1")},
		{GUID: "a", Version: plugin.MustParseVersion("2")},
	})
	require.NoError(t, err)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].GUID)
	assert.Equal(t, "2.0.0", list[0].Version.String())
}
