package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"mod-compat/core/plugin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(guid, version string, level plugin.CompatibilityLevel, strictness plugin.VersionStrictness) plugin.Record {
	return plugin.Record{
		GUID:       guid,
		Version:    plugin.MustParseVersion(version),
		Level:      level,
		Strictness: strictness,
	}
}

func TestCompute_EmptySentinel(t *testing.T) {
	assert.Equal(t, "", Compute(nil))
	assert.Equal(t, "", Compute([]plugin.Record{
		rec("a", "1.0.0", plugin.LevelClientOnly, plugin.StrictnessPatch),
		rec("b", "1.0.0", plugin.LevelClientOptional, plugin.StrictnessPatch),
		rec("c", "1.0.0", plugin.LevelUnset, plugin.StrictnessUnset),
	}))
}

func TestCompute_Layout(t *testing.T) {
	records := []plugin.Record{
		rec("zeta", "3.4.5", plugin.LevelEveryone, plugin.StrictnessMinor),
		rec("Alpha", "1.2.3", plugin.LevelEveryone, plugin.StrictnessPatch),
		rec("beta", "9.9.9", plugin.LevelEveryone, plugin.StrictnessNone),
		rec("ignored", "1.0.0", plugin.LevelServerOnly, plugin.StrictnessPatch),
	}

	// Ordinal order puts uppercase before lowercase.
	sum := sha256.Sum256([]byte("Alpha1.2.3" + "beta" + "zeta3.4"))
	want := strings.ToUpper(hex.EncodeToString(sum[:]))

	assert.Equal(t, want, Compute(records))
}

func TestCompute_OrderIndependent(t *testing.T) {
	a := rec("a", "1.0.0", plugin.LevelEveryone, plugin.StrictnessMajor)
	b := rec("b", "2.1.0", plugin.LevelEveryone, plugin.StrictnessMinor)
	c := rec("c", "0.0.1", plugin.LevelClientOnly, plugin.StrictnessPatch)

	assert.Equal(t, Compute([]plugin.Record{a, b, c}), Compute([]plugin.Record{c, b, a}))
}

func TestCompute_TruncatedVersionsCollide(t *testing.T) {
	a := rec("a", "1.2.0", plugin.LevelEveryone, plugin.StrictnessMinor)
	b := rec("a", "1.2.9", plugin.LevelEveryone, plugin.StrictnessMinor)
	assert.Equal(t, Compute([]plugin.Record{a}), Compute([]plugin.Record{b}))

	c := rec("a", "1.3.0", plugin.LevelEveryone, plugin.StrictnessMinor)
	assert.NotEqual(t, Compute([]plugin.Record{a}), Compute([]plugin.Record{c}))
}

type countingSource struct {
	reg   *plugin.Registry
	calls int
}

func (s *countingSource) Snapshot() ([]plugin.Record, uint64) {
	s.calls++
	return s.reg.Snapshot()
}

func TestGenerator_InvalidatesOnRegistryChange(t *testing.T) {
	reg := plugin.NewRegistry()
	gen := NewRegistryGenerator(reg)

	assert.Equal(t, "", gen.Checksum())

	require.NoError(t, reg.Register(rec("a", "1.0.0", plugin.LevelEveryone, plugin.StrictnessPatch)))
	first := gen.Checksum()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, gen.Checksum())

	require.NoError(t, reg.Register(rec("a", "1.0.1", plugin.LevelEveryone, plugin.StrictnessPatch)))
	assert.NotEqual(t, first, gen.Checksum())

	require.NoError(t, reg.Unregister("a"))
	assert.Equal(t, "", gen.Checksum())
}

func TestGenerator_Invalidate(t *testing.T) {
	src := &countingSource{reg: plugin.NewRegistry()}
	gen := NewGenerator(src)

	gen.Checksum()
	gen.Invalidate()
	gen.Checksum()

	assert.Equal(t, 2, src.calls)
}
