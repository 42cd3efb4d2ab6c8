package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndList(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(Record{GUID: "b", Version: Version{1, 0, 0}, Level: LevelEveryone}))
	require.NoError(t, reg.Register(Record{GUID: "a", Version: Version{2, 0, 0}, Level: LevelClientOnly}))

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].GUID)
	assert.Equal(t, "a", list[1].GUID)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(Record{GUID: "a", Version: Version{1, 0, 0}, Level: LevelEveryone}))
	require.NoError(t, reg.Register(Record{GUID: "b", Version: Version{1, 0, 0}, Level: LevelEveryone}))
	require.NoError(t, reg.Register(Record{GUID: "a", Version: Version{3, 0, 0}, Level: LevelServerOnly}))

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].GUID)
	assert.Equal(t, Version{3, 0, 0}, list[0].Version)
	assert.Equal(t, LevelServerOnly, list[0].Level)
}

func TestRegistry_Validation(t *testing.T) {
	reg := NewRegistry()

	for _, guid := range []string{"", "a;b", "a&b", "trailing@"} {
		err := reg.Register(Record{GUID: guid})
		assert.ErrorIs(t, err, ErrInvalidGUID, guid)
	}

	err := reg.Register(Record{GUID: "ok", Level: "mandatory"})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_VariableWithoutResolverDegrades(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Record{GUID: "v", Level: LevelVariable}))

	rec, ok := reg.Get("v")
	require.True(t, ok)
	assert.Equal(t, LevelClientOnly, rec.Level)
	assert.Equal(t, StrictnessNone, rec.Strictness)
}

func TestRegistry_LevelWithoutStrictnessDefaultsToNone(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Record{GUID: "a", Version: Version{1, 0, 0}, Level: LevelEveryone}))
	require.NoError(t, reg.Register(Record{GUID: "b", Version: Version{1, 0, 0}}))

	a, _ := reg.Get("a")
	assert.Equal(t, StrictnessNone, a.Strictness)
	assert.True(t, a.Attributed())

	b, _ := reg.Get("b")
	assert.Equal(t, StrictnessUnset, b.Strictness)
	assert.False(t, b.Attributed())
}

func TestRegistry_UnregisterAndHooks(t *testing.T) {
	reg := NewRegistry()
	changes := 0
	reg.OnChange(func() { changes++ })

	require.NoError(t, reg.Register(Record{GUID: "a"}))
	_, gen1 := reg.Snapshot()

	require.NoError(t, reg.Unregister("a"))
	_, gen2 := reg.Snapshot()

	assert.ErrorIs(t, reg.Unregister("a"), ErrNotRegistered)
	assert.Equal(t, 2, changes)
	assert.Greater(t, gen2, gen1)
	assert.Empty(t, reg.List())
}
