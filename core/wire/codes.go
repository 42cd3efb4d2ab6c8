package wire

import "mod-compat/core/plugin"

const (
	// FieldSeparator separates the fields of a record.
	FieldSeparator = ";"
	// RecordSeparator separates records.
	RecordSeparator = "&"
	// ContinuationSentinel ends every page that is followed by another page.
	ContinuationSentinel = "@"
)

// LevelCodes maps each transmittable level to its wire code.
var LevelCodes = map[plugin.CompatibilityLevel]string{
	plugin.LevelClientOnly:     "c",
	plugin.LevelServerOnly:     "s",
	plugin.LevelEveryone:       "e",
	plugin.LevelClientOptional: "o",
}

// StrictnessCodes maps each strictness to its wire code.
var StrictnessCodes = map[plugin.VersionStrictness]string{
	plugin.StrictnessNone:  "o",
	plugin.StrictnessMajor: "m",
	plugin.StrictnessMinor: "n",
	plugin.StrictnessPatch: "p",
}

var (
	codeLevels       = invert(LevelCodes)
	codeStrictnesses = invert(StrictnessCodes)
)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, code := range m {
		out[code] = k
	}
	return out
}

// LevelCode returns the wire code for a level, or "" for unset and variable.
func LevelCode(l plugin.CompatibilityLevel) string {
	return LevelCodes[l]
}

// ParseLevelCode returns the level for a wire code, or plugin.LevelUnset.
func ParseLevelCode(code string) plugin.CompatibilityLevel {
	return codeLevels[code]
}

// StrictnessCode returns the wire code for a strictness, or "" for unset.
func StrictnessCode(s plugin.VersionStrictness) string {
	return StrictnessCodes[s]
}

// ParseStrictnessCode returns the strictness for a wire code, or plugin.StrictnessUnset.
func ParseStrictnessCode(code string) plugin.VersionStrictness {
	return codeStrictnesses[code]
}

// priority ranks levels by how strongly they constrain the other side; lower ranks are
// kept first when an inventory has to be truncated.
func priority(l plugin.CompatibilityLevel) int {
	switch l {
	case plugin.LevelEveryone:
		return 0
	case plugin.LevelClientOptional:
		return 1
	case plugin.LevelServerOnly:
		return 2
	case plugin.LevelClientOnly:
		return 3
	default:
		return 4
	}
}
