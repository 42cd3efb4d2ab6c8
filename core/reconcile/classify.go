package reconcile

// Classify returns the aggregate state of the diff: unknown without entries,
// incompatible when any entry is not compatible, compatible otherwise.
func (d *LobbyDiff) Classify() LobbyCompatibility {
	if d == nil || len(d.Entries) == 0 {
		return LobbyUnknown
	}
	for _, e := range d.Entries {
		if e.Result != ResultCompatible {
			return LobbyIncompatible
		}
	}
	return LobbyCompatible
}

// Filter returns the entries matching the category, in diff order. The diff is not modified.
func (d *LobbyDiff) Filter(c Category) []DiffEntry {
	if d == nil {
		return []DiffEntry{}
	}
	out := make([]DiffEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		if c.Matches(e.Result) {
			out = append(out, e)
		}
	}
	return out
}

// RequiresMissingPlugins reports whether the lobby requires plugins this client lacks.
func (d *LobbyDiff) RequiresMissingPlugins() bool {
	if d == nil {
		return false
	}
	for _, e := range d.Entries {
		if e.Result == ResultClientMissingMod {
			return true
		}
	}
	return false
}

// Summarize counts the entries per result.
func (d *LobbyDiff) Summarize() Summary {
	s := Summary{State: d.Classify()}
	if d == nil {
		return s
	}
	s.Total = len(d.Entries)
	for _, e := range d.Entries {
		switch e.Result {
		case ResultCompatible:
			s.Compatible++
		case ResultServerMissingMod:
			s.ServerMissing++
		case ResultClientMissingMod:
			s.ClientMissing++
		case ResultModVersionMismatch:
			s.Mismatches++
		case ResultUnknown:
			s.Unknown++
		}
	}
	return s
}
