package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_ResolveLevel(t *testing.T) {
	meta := map[string]string{"gamemode": "pvp"}

	tests := []struct {
		name    string
		record  Record
		want    CompatibilityLevel
		wantErr bool
	}{
		{
			name:   "Concrete level passes through",
			record: Record{GUID: "a", Level: LevelEveryone},
			want:   LevelEveryone,
		},
		{
			name:   "Unset stays unset",
			record: Record{GUID: "a"},
			want:   LevelUnset,
		},
		{
			name:   "Variable without resolver",
			record: Record{GUID: "a", Level: LevelVariable},
			want:   LevelClientOnly,
		},
		{
			name: "Resolver reads metadata",
			record: Record{GUID: "a", Level: LevelVariable, Resolver: func(m map[string]string) (CompatibilityLevel, error) {
				if m["gamemode"] == "pvp" {
					return LevelEveryone, nil
				}
				return LevelClientOnly, nil
			}},
			want: LevelEveryone,
		},
		{
			name: "Resolver error",
			record: Record{GUID: "a", Level: LevelVariable, Resolver: func(map[string]string) (CompatibilityLevel, error) {
				return LevelEveryone, errors.New("boom")
			}},
			want:    LevelClientOnly,
			wantErr: true,
		},
		{
			name: "Resolver answers variable",
			record: Record{GUID: "a", Level: LevelVariable, Resolver: func(map[string]string) (CompatibilityLevel, error) {
				return LevelVariable, nil
			}},
			want:    LevelClientOnly,
			wantErr: true,
		},
		{
			name: "Resolver panics",
			record: Record{GUID: "a", Level: LevelVariable, Resolver: func(map[string]string) (CompatibilityLevel, error) {
				panic("nope")
			}},
			want:    LevelClientOnly,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.ResolveLevel(meta)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnresolvedLevel)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveAll_CallsResolverOnce(t *testing.T) {
	calls := 0
	records := []Record{
		{GUID: "a", Level: LevelEveryone},
		{GUID: "b", Level: LevelVariable, Resolver: func(map[string]string) (CompatibilityLevel, error) {
			calls++
			return LevelServerOnly, nil
		}},
	}

	out, errs := ResolveAll(records, nil)
	assert.Empty(t, errs)
	assert.Equal(t, 1, calls)
	assert.Equal(t, LevelServerOnly, out[1].Level)
	assert.Nil(t, out[1].Resolver)
	assert.Equal(t, LevelVariable, records[1].Level)
}
