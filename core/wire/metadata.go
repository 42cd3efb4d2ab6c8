package wire

import (
	"strconv"
	"strings"

	"mod-compat/core/plugin"
)

const (
	// KeyPluginsPrefix prefixes the page keys: plugins0, plugins1, ...
	KeyPluginsPrefix = "plugins"
	// KeyChecksum holds the published checksum.
	KeyChecksum = "checksum"
	// KeyModded is "true" when the host runs this engine.
	KeyModded = "modded"
	// KeyJoinable is "false" when the host refuses new players.
	KeyJoinable = "joinable"
)

// PageKey returns the metadata key of page i.
func PageKey(i int) string {
	return KeyPluginsPrefix + strconv.Itoa(i)
}

// Pages is the result of reading page keys out of lobby metadata.
type Pages struct {
	// Values are the pages found, in order.
	Values []string
	// Present is false when the metadata has no plugins0 key at all.
	Present bool
	// Complete is false when a page announced a continuation that is missing.
	Complete bool
}

// ReadPages follows plugins0, plugins1, ... as long as each page ends with the
// continuation sentinel.
func ReadPages(metadata map[string]string) Pages {
	var out Pages
	for i := 0; ; i++ {
		page, ok := metadata[PageKey(i)]
		if !ok {
			out.Complete = i == 0
			return out
		}
		out.Present = true
		out.Values = append(out.Values, page)
		if !strings.HasSuffix(page, ContinuationSentinel) {
			out.Complete = true
			return out
		}
	}
}

// ReadInventory decodes the inventory published in the metadata. published is false when
// the host published no plugin pages.
func ReadInventory(metadata map[string]string) (records []plugin.Record, published bool, err error) {
	pages := ReadPages(metadata)
	if !pages.Present {
		return nil, false, nil
	}
	records, err = Decode(pages.Values)
	return records, true, err
}

// Publish writes pages, checksum and the modded flag into metadata, removing page keys
// left over from a larger previous publish.
func Publish(metadata map[string]string, pages []string, checksum string) {
	for i := len(pages); ; i++ {
		if _, ok := metadata[PageKey(i)]; !ok {
			break
		}
		delete(metadata, PageKey(i))
	}
	for i, page := range pages {
		metadata[PageKey(i)] = page
	}
	metadata[KeyChecksum] = checksum
	metadata[KeyModded] = "true"
}

// Flags are the lobby-level values read next to the inventory.
type Flags struct {
	Modded   bool   `json:"modded"`
	Joinable bool   `json:"joinable"`
	Checksum string `json:"checksum"`
}

// ReadFlags reads the lobby flags. A missing joinable key means joinable.
func ReadFlags(metadata map[string]string) Flags {
	joinable := true
	if v, ok := metadata[KeyJoinable]; ok {
		joinable = parseBool(v)
	}
	return Flags{
		Modded:   parseBool(metadata[KeyModded]),
		Joinable: joinable,
		Checksum: metadata[KeyChecksum],
	}
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
