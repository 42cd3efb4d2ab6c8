package wire

import (
	"sort"
	"strings"

	"mod-compat/core/plugin"
)

const (
	// MaxMetadataBytes is the transport ceiling for a single metadata value.
	MaxMetadataBytes = 8192
	// DefaultReservedBytes is kept free for other metadata, leaving a 7800-byte page budget.
	DefaultReservedBytes = 392
	// DefaultMaxPages bounds how many plugin pages a lobby publishes.
	DefaultMaxPages = 8
)

// Encoder splits inventories into budget-bounded pages.
type Encoder struct {
	// PageBudget is the maximum byte length of a page, sentinel included.
	PageBudget int

	// MaxPages is the maximum number of pages. Zero or less means unlimited.
	MaxPages int
}

// NewEncoder creates an encoder with a page budget of MaxMetadataBytes minus reserved.
// A negative reservation, or one that leaves no room at all, falls back to the default.
func NewEncoder(reserved, maxPages int) *Encoder {
	if reserved < 0 || reserved >= MaxMetadataBytes-1 {
		reserved = DefaultReservedBytes
	}
	return &Encoder{
		PageBudget: MaxMetadataBytes - reserved,
		MaxPages:   maxPages,
	}
}

// DefaultEncoder uses the default reservation and page limit.
func DefaultEncoder() *Encoder {
	return NewEncoder(DefaultReservedBytes, DefaultMaxPages)
}

// Report describes the outcome of an encode.
type Report struct {
	// Pages are the page strings, to be written under plugins0, plugins1, ...
	Pages []string `json:"pages"`

	// Encoded is the number of records carried by the pages.
	Encoded int `json:"encoded"`

	// Dropped lists the GUIDs that did not fit.
	Dropped []string `json:"dropped,omitempty"`

	// Reordered is true when records had to be ranked by priority.
	Reordered bool `json:"reordered"`
}

// Encode returns the pages for the inventory. It never fails: records that do not fit
// are dropped silently. Use EncodeReport to learn what was dropped.
func (e *Encoder) Encode(records []plugin.Record) []string {
	return e.EncodeReport(records).Pages
}

// EncodeReport encodes the inventory, keeping input order when everything fits and the
// longest priority-ordered prefix otherwise. At least one (possibly empty) page is
// always returned.
func (e *Encoder) EncodeReport(records []plugin.Record) Report {
	encoded := make([]string, len(records))
	for i, rec := range records {
		encoded[i] = EncodeRecord(rec)
	}

	if pages, ok := e.layout(encoded); ok {
		return Report{Pages: pages, Encoded: len(records)}
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return priority(records[order[a]].Level) < priority(records[order[b]].Level)
	})

	ranked := make([]string, len(order))
	for i, idx := range order {
		ranked[i] = encoded[idx]
	}

	// Fitting is monotonic in the prefix length: lo always fits, hi never does.
	lo, hi := 0, len(ranked)
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if _, ok := e.layout(ranked[:mid]); ok {
			lo = mid
		} else {
			hi = mid
		}
	}

	pages, _ := e.layout(ranked[:lo])
	report := Report{Pages: pages, Encoded: lo, Reordered: true}
	for _, idx := range order[lo:] {
		report.Dropped = append(report.Dropped, records[idx].GUID)
	}
	return report
}

// layout places every record on as few pages as possible. Pages followed by another page
// lose one byte to the sentinel; the final page may use the whole budget. It reports
// false when the records need more pages than allowed or a record cannot be placed.
func (e *Encoder) layout(encoded []string) ([]string, bool) {
	if len(encoded) == 0 {
		return []string{""}, true
	}

	// remaining[i] is the joined length of encoded[i:] plus one trailing separator.
	remaining := make([]int, len(encoded)+1)
	for i := len(encoded) - 1; i >= 0; i-- {
		remaining[i] = remaining[i+1] + len(encoded[i]) + len(RecordSeparator)
	}

	var pages []string
	for i := 0; i < len(encoded); {
		if e.MaxPages > 0 && len(pages) >= e.MaxPages {
			return nil, false
		}
		if remaining[i]-len(RecordSeparator) <= e.PageBudget {
			return append(pages, strings.Join(encoded[i:], RecordSeparator)), true
		}

		limit := e.PageBudget - len(ContinuationSentinel)
		size, j := 0, i
		for ; j < len(encoded); j++ {
			need := len(encoded[j])
			if j > i {
				need += len(RecordSeparator)
			}
			if size+need > limit {
				break
			}
			size += need
		}
		if j == i {
			return nil, false
		}

		pages = append(pages, strings.Join(encoded[i:j], RecordSeparator)+ContinuationSentinel)
		i = j
	}
	return pages, true
}
