package reconcile

import (
	"fmt"

	"mod-compat/core/plugin"
)

// Result is the classification of a single plugin.
type Result string

const (
	// ResultCompatible means the plugin does not prevent playing together.
	ResultCompatible Result = "compatible"
	// ResultServerMissingMod means the client requires a plugin the lobby lacks.
	ResultServerMissingMod Result = "server_missing_mod"
	// ResultClientMissingMod means the lobby requires a plugin the client lacks.
	ResultClientMissingMod Result = "client_missing_mod"
	// ResultModVersionMismatch means both sides have the plugin but disagree on level or version.
	ResultModVersionMismatch Result = "mod_version_mismatch"
	// ResultUnknown means one side has no compatibility metadata for the plugin.
	ResultUnknown Result = "unknown"
)

// Incompatible reports whether the result blocks playing together.
func (r Result) Incompatible() bool {
	switch r {
	case ResultServerMissingMod, ResultClientMissingMod, ResultModVersionMismatch:
		return true
	default:
		return false
	}
}

// DiffEntry is the classification of one plugin GUID.
type DiffEntry struct {
	// GUID identifies the plugin.
	GUID string `json:"guid"`

	// Result is the classification.
	Result Result `json:"result"`

	// ClientVersion is the locally installed version, nil when absent.
	ClientVersion *plugin.Version `json:"client_version,omitempty"`

	// ServerVersion is the version the lobby published, nil when absent.
	ServerVersion *plugin.Version `json:"server_version,omitempty"`
}

// LobbyDiff is the full classification of a lobby against the local inventory.
type LobbyDiff struct {
	// Entries are ordered lobby plugins first, then client-only plugins.
	Entries []DiffEntry `json:"entries"`

	// Published is true when the lobby carried a plugin inventory.
	Published bool `json:"published"`

	// ParseError is set when the published inventory could not be decoded.
	// The diff is then empty.
	ParseError error `json:"-"`

	// ResolverErrors collects variable-level resolvers that failed and fell back to client_only.
	ResolverErrors []error `json:"-"`
}

// LobbyCompatibility is the aggregate state of a lobby.
type LobbyCompatibility string

const (
	// LobbyCompatible means every entry is compatible.
	LobbyCompatible LobbyCompatibility = "compatible"
	// LobbyIncompatible means at least one entry is not compatible.
	LobbyIncompatible LobbyCompatibility = "incompatible"
	// LobbyUnknown means there is no reconciliation data. Search ordering treats it as
	// presumed compatible.
	LobbyUnknown LobbyCompatibility = "unknown"
)

// Category selects entries for display.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryCompatible   Category = "compatible"
	CategoryIncompatible Category = "incompatible"
	CategoryUnknown      Category = "unknown"
)

// ParseCategory validates a category name; "" means CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryCompatible, CategoryIncompatible, CategoryUnknown:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Matches reports whether a result belongs to the category.
func (c Category) Matches(r Result) bool {
	switch c {
	case CategoryAll:
		return true
	case CategoryCompatible:
		return r == ResultCompatible
	case CategoryIncompatible:
		return r.Incompatible()
	case CategoryUnknown:
		return r == ResultUnknown
	default:
		return false
	}
}

// Summary provides aggregate counts for a diff.
type Summary struct {
	// Total is the number of entries.
	Total int `json:"total"`

	// Compatible counts compatible entries.
	Compatible int `json:"compatible"`

	// ServerMissing counts server_missing_mod entries.
	ServerMissing int `json:"server_missing"`

	// ClientMissing counts client_missing_mod entries.
	ClientMissing int `json:"client_missing"`

	// Mismatches counts mod_version_mismatch entries.
	Mismatches int `json:"mismatches"`

	// Unknown counts unknown entries.
	Unknown int `json:"unknown"`

	// State is the aggregate classification.
	State LobbyCompatibility `json:"state"`
}
