package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDiff() *LobbyDiff {
	return &LobbyDiff{
		Published: true,
		Entries: []DiffEntry{
			{GUID: "a", Result: ResultCompatible},
			{GUID: "b", Result: ResultClientMissingMod},
			{GUID: "c", Result: ResultUnknown},
			{GUID: "d", Result: ResultModVersionMismatch},
			{GUID: "e", Result: ResultCompatible},
			{GUID: "f", Result: ResultServerMissingMod},
		},
	}
}

func guids(entries []DiffEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.GUID)
	}
	return out
}

func TestLobbyDiff_Classify(t *testing.T) {
	assert.Equal(t, LobbyUnknown, (*LobbyDiff)(nil).Classify())
	assert.Equal(t, LobbyUnknown, (&LobbyDiff{Published: true}).Classify())
	assert.Equal(t, LobbyIncompatible, sampleDiff().Classify())

	unknownOnly := &LobbyDiff{Entries: []DiffEntry{{GUID: "x", Result: ResultUnknown}}}
	assert.Equal(t, LobbyIncompatible, unknownOnly.Classify())

	ok := &LobbyDiff{Entries: []DiffEntry{{GUID: "x", Result: ResultCompatible}}}
	assert.Equal(t, LobbyCompatible, ok.Classify())
}

func TestLobbyDiff_Filter(t *testing.T) {
	diff := sampleDiff()

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, guids(diff.Filter(CategoryAll)))
	assert.Equal(t, []string{"a", "e"}, guids(diff.Filter(CategoryCompatible)))
	assert.Equal(t, []string{"b", "d", "f"}, guids(diff.Filter(CategoryIncompatible)))
	assert.Equal(t, []string{"c"}, guids(diff.Filter(CategoryUnknown)))

	// Filtering is non-destructive.
	assert.Len(t, diff.Entries, 6)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	assert.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	c, err = ParseCategory("incompatible")
	assert.NoError(t, err)
	assert.Equal(t, CategoryIncompatible, c)

	_, err = ParseCategory("broken")
	assert.Error(t, err)
}

func TestLobbyDiff_RequiresMissingPlugins(t *testing.T) {
	assert.True(t, sampleDiff().RequiresMissingPlugins())
	assert.False(t, (&LobbyDiff{Entries: []DiffEntry{{Result: ResultServerMissingMod}}}).RequiresMissingPlugins())
	assert.False(t, (*LobbyDiff)(nil).RequiresMissingPlugins())
}

func TestLobbyDiff_Summarize(t *testing.T) {
	s := sampleDiff().Summarize()

	assert.Equal(t, Summary{
		Total:         6,
		Compatible:    2,
		ServerMissing: 1,
		ClientMissing: 1,
		Mismatches:    1,
		Unknown:       1,
		State:         LobbyIncompatible,
	}, s)
}
