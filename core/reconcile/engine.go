package reconcile

import (
	"mod-compat/core/plugin"
)

// Reconcile classifies every plugin of the client and lobby inventories.
//
// Variable levels on either side are resolved once against the lobby metadata before
// comparison. Duplicate GUIDs within one inventory keep the last record at the position
// of the first. The returned diff is marked as published.
func Reconcile(client, lobby []plugin.Record, metadata map[string]string) LobbyDiff {
	client, clientErrs := plugin.ResolveAll(client, metadata)
	lobby, lobbyErrs := plugin.ResolveAll(lobby, metadata)

	clientOrder, clientIndex := index(client)
	lobbyOrder, lobbyIndex := index(lobby)

	diff := LobbyDiff{
		Entries:        make([]DiffEntry, 0, len(clientOrder)+len(lobbyOrder)),
		Published:      true,
		ResolverErrors: append(clientErrs, lobbyErrs...),
	}

	// Lobby-declared plugins first.
	for _, guid := range lobbyOrder {
		l := lobbyIndex[guid]
		c, hasClient := clientIndex[guid]

		entry := DiffEntry{
			GUID:          guid,
			ServerVersion: versionPtr(l.Version),
		}
		if hasClient {
			entry.ClientVersion = versionPtr(c.Version)
		}
		entry.Result = classifyLobbyPlugin(l, c, hasClient)
		diff.Entries = append(diff.Entries, entry)
	}

	// Then plugins the lobby does not know about.
	for _, guid := range clientOrder {
		if _, covered := lobbyIndex[guid]; covered {
			continue
		}
		c := clientIndex[guid]
		diff.Entries = append(diff.Entries, DiffEntry{
			GUID:          guid,
			ClientVersion: versionPtr(c.Version),
			Result:        classifyClientPlugin(c),
		})
	}

	return diff
}

// classifyLobbyPlugin classifies a plugin present in the lobby inventory.
func classifyLobbyPlugin(l, c plugin.Record, hasClient bool) Result {
	if !l.Attributed() {
		// Unknown mods are assumed compatible when the versions agree.
		if hasClient && c.Version == l.Version {
			return ResultCompatible
		}
		return ResultUnknown
	}

	if !hasClient {
		if l.Level == plugin.LevelEveryone {
			return ResultClientMissingMod
		}
		return ResultCompatible
	}

	if !c.Attributed() || c.Level != l.Level {
		return ResultModVersionMismatch
	}
	if l.Level != plugin.LevelClientOnly && !plugin.VersionMatches(c, l) {
		return ResultModVersionMismatch
	}
	return ResultCompatible
}

// classifyClientPlugin classifies a plugin the lobby inventory does not contain.
func classifyClientPlugin(c plugin.Record) Result {
	if !c.Attributed() {
		return ResultUnknown
	}
	switch c.Level {
	case plugin.LevelEveryone, plugin.LevelClientOptional:
		return ResultServerMissingMod
	default:
		return ResultCompatible
	}
}

// index returns the distinct GUIDs in first-seen order and the last record for each.
func index(records []plugin.Record) ([]string, map[string]plugin.Record) {
	order := make([]string, 0, len(records))
	byGUID := make(map[string]plugin.Record, len(records))
	for _, rec := range records {
		if _, seen := byGUID[rec.GUID]; !seen {
			order = append(order, rec.GUID)
		}
		byGUID[rec.GUID] = rec
	}
	return order, byGUID
}

func versionPtr(v plugin.Version) *plugin.Version {
	return &v
}
