package plugin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned when a version string is not a dotted numeric triple.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "1", "1.2" or "1.2.3" (an optional leading "v" is accepted).
// Missing components are zero.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}

	segments := strings.Split(raw, ".")
	if len(segments) > 3 {
		return Version{}, fmt.Errorf("%w: %q has more than three components", ErrInvalidVersion, s)
	}

	var parts [3]int
	for i, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// MustParseVersion is ParseVersion for constants; it panics on malformed input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

// Truncate renders only the components the strictness cares about.
// None (and unset) yields "", Major "1", Minor "1.2", Patch "1.2.3".
func (v Version) Truncate(s VersionStrictness) string {
	switch s {
	case StrictnessMajor:
		return strconv.Itoa(v.Major)
	case StrictnessMinor:
		return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
	case StrictnessPatch:
		return v.String()
	default:
		return ""
	}
}

// MarshalText encodes the version as its dotted string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a dotted version string.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
