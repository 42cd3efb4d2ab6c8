package reconcile

// SortLobbies orders lobbies for search results: compatible first, then unknown
// (presumed compatible), then incompatible.
//
// filtered is a pre-filtered subset (for example lobbies matching the local checksum) and
// all is the unfiltered superset. Within each bucket lobbies from filtered come first;
// relative order is otherwise preserved and duplicates (by id) are dropped.
func SortLobbies[T any](filtered, all []T, id func(T) string, state func(T) LobbyCompatibility) []T {
	combined := make([]T, 0, len(filtered)+len(all))
	seen := make(map[string]struct{}, len(filtered)+len(all))
	for _, list := range [][]T{filtered, all} {
		for _, lobby := range list {
			key := id(lobby)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			combined = append(combined, lobby)
		}
	}

	compatible, rest := partition(combined, func(l T) bool { return state(l) == LobbyCompatible })
	presumed, incompatible := partition(rest, func(l T) bool { return state(l) == LobbyUnknown })

	out := make([]T, 0, len(combined))
	out = append(out, compatible...)
	out = append(out, presumed...)
	return append(out, incompatible...)
}

// partition splits items into matched and unmatched, keeping relative order.
func partition[T any](items []T, match func(T) bool) (matched, unmatched []T) {
	for _, item := range items {
		if match(item) {
			matched = append(matched, item)
		} else {
			unmatched = append(unmatched, item)
		}
	}
	return matched, unmatched
}

// ChecksumMatches is the exact-match lobby filter term. An empty local checksum means
// the client has no hard requirements and every lobby passes.
func ChecksumMatches(local, remote string) bool {
	return local == "" || local == remote
}
