package plugin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidGUID is returned when a GUID is empty or contains a reserved wire character.
	ErrInvalidGUID = errors.New("invalid plugin guid")
	// ErrInvalidLevel is returned for an unknown compatibility level name.
	ErrInvalidLevel = errors.New("invalid compatibility level")
	// ErrInvalidStrictness is returned for an unknown version strictness name.
	ErrInvalidStrictness = errors.New("invalid version strictness")
	// ErrNotRegistered is returned when a GUID is not present in the registry.
	ErrNotRegistered = errors.New("plugin not registered")
)

// reservedGUIDChars are the wire separators and the page continuation sentinel.
const reservedGUIDChars = ";&@"

// CompatibilityLevel declares which sides of a lobby need a plugin installed.
type CompatibilityLevel string

const (
	// LevelUnset marks a record without compatibility metadata.
	LevelUnset CompatibilityLevel = ""
	// LevelClientOnly plugins only affect the local client.
	LevelClientOnly CompatibilityLevel = "client_only"
	// LevelServerOnly plugins only need to be installed on the host.
	LevelServerOnly CompatibilityLevel = "server_only"
	// LevelEveryone plugins must be installed on both sides.
	LevelEveryone CompatibilityLevel = "everyone"
	// LevelClientOptional plugins must be on the host and may be on clients.
	LevelClientOptional CompatibilityLevel = "client_optional"
	// LevelVariable plugins decide their level through a Resolver.
	LevelVariable CompatibilityLevel = "variable"
)

// Levels lists every concrete (non-unset) level.
var Levels = []CompatibilityLevel{
	LevelClientOnly,
	LevelServerOnly,
	LevelEveryone,
	LevelClientOptional,
	LevelVariable,
}

// Valid reports whether the level is unset or one of the known levels.
func (l CompatibilityLevel) Valid() bool {
	if l == LevelUnset {
		return true
	}
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLevel converts a level name into a CompatibilityLevel.
// Names are case-insensitive and accept dashes in place of underscores.
func ParseLevel(s string) (CompatibilityLevel, error) {
	l := CompatibilityLevel(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !l.Valid() {
		return LevelUnset, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// VersionStrictness declares how closely two versions of the same plugin must agree.
type VersionStrictness string

const (
	// StrictnessUnset marks a record without a strictness declaration; it matches like StrictnessNone.
	StrictnessUnset VersionStrictness = ""
	// StrictnessNone accepts any version.
	StrictnessNone VersionStrictness = "none"
	// StrictnessMajor requires equal major versions.
	StrictnessMajor VersionStrictness = "major"
	// StrictnessMinor requires equal major and minor versions.
	StrictnessMinor VersionStrictness = "minor"
	// StrictnessPatch requires identical versions.
	StrictnessPatch VersionStrictness = "patch"
)

// Strictnesses lists every concrete strictness from most to least permissive.
var Strictnesses = []VersionStrictness{
	StrictnessNone,
	StrictnessMajor,
	StrictnessMinor,
	StrictnessPatch,
}

// Valid reports whether the strictness is unset or one of the known values.
func (s VersionStrictness) Valid() bool {
	if s == StrictnessUnset {
		return true
	}
	for _, known := range Strictnesses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStrictness converts a strictness name into a VersionStrictness.
func ParseStrictness(s string) (VersionStrictness, error) {
	v := VersionStrictness(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return StrictnessUnset, fmt.Errorf("%w: %q", ErrInvalidStrictness, s)
	}
	return v, nil
}

// Record is the compatibility declaration of a single plugin on one side of a lobby.
type Record struct {
	// GUID uniquely identifies the plugin across versions.
	GUID string `json:"guid"`

	// Version is the installed version.
	Version Version `json:"version"`

	// Level is the declared compatibility level. LevelUnset means unattributed.
	Level CompatibilityLevel `json:"level,omitempty"`

	// Strictness is the declared version strictness.
	Strictness VersionStrictness `json:"strictness,omitempty"`

	// Resolver decides the concrete level of a LevelVariable record.
	// It is local only and never serialized.
	Resolver Resolver `json:"-"`
}

// Attributed reports whether the record carries compatibility metadata: both a level and
// a strictness. A record missing either one is treated as an unknown mod.
func (r Record) Attributed() bool {
	return r.Level != LevelUnset && r.Strictness != StrictnessUnset
}

// Validate checks the GUID, level and strictness of the record.
func (r Record) Validate() error {
	if r.GUID == "" || strings.ContainsAny(r.GUID, reservedGUIDChars) {
		return fmt.Errorf("%w: %q", ErrInvalidGUID, r.GUID)
	}
	if !r.Level.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, r.Level)
	}
	if !r.Strictness.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStrictness, r.Strictness)
	}
	return nil
}
