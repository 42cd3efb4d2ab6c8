package wire

import (
	"fmt"
	"strings"

	"mod-compat/core/plugin"
)

// EncodeRecord renders a single record.
func EncodeRecord(rec plugin.Record) string {
	return strings.Join([]string{
		rec.GUID,
		rec.Version.String(),
		LevelCode(rec.Level),
		StrictnessCode(rec.Strictness),
	}, FieldSeparator)
}

// DecodeRecord parses a single record.
func DecodeRecord(s string) (plugin.Record, error) {
	fields := strings.Split(s, FieldSeparator)
	if len(fields) != 4 {
		return plugin.Record{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	if fields[0] == "" {
		return plugin.Record{}, fmt.Errorf("empty guid")
	}

	version, err := plugin.ParseVersion(fields[1])
	if err != nil {
		return plugin.Record{}, err
	}

	return plugin.Record{
		GUID:       fields[0],
		Version:    version,
		Level:      ParseLevelCode(fields[2]),
		Strictness: ParseStrictnessCode(fields[3]),
	}, nil
}
