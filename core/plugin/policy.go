package plugin

// VersionMatches reports whether candidate satisfies the version requirement declared by
// required. The strictness is always read from required.
func VersionMatches(required, candidate Record) bool {
	return StrictnessMatches(required.Strictness, required.Version, candidate.Version)
}

// StrictnessMatches compares two versions at the granularity of s.
func StrictnessMatches(s VersionStrictness, required, candidate Version) bool {
	switch s {
	case StrictnessMajor:
		return candidate.Major == required.Major
	case StrictnessMinor:
		return candidate.Major == required.Major && candidate.Minor == required.Minor
	case StrictnessPatch:
		return candidate == required
	default:
		return true
	}
}
