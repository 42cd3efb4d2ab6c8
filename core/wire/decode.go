package wire

import (
	"errors"
	"fmt"
	"strings"

	"mod-compat/core/plugin"
)

// ErrMetadataParse is matched by every *MetadataParseError.
var ErrMetadataParse = errors.New("malformed plugin metadata")

// MetadataParseError reports a record that could not be decoded.
type MetadataParseError struct {
	// Page is the index of the page holding the record.
	Page int
	// Record is the index of the record within its page.
	Record int
	// Input is the raw record text.
	Input string
	// Err is the underlying cause.
	Err error
}

func (e *MetadataParseError) Error() string {
	return fmt.Sprintf("%s: page %d record %d %q: %v", ErrMetadataParse, e.Page, e.Record, e.Input, e.Err)
}

// Unwrap exposes both ErrMetadataParse and the underlying cause.
func (e *MetadataParseError) Unwrap() []error {
	return []error{ErrMetadataParse, e.Err}
}

// Decode parses the given pages in order. Any subset of leading pages decodes to the
// records they hold; missing trailing pages are not an error.
func Decode(pages []string) ([]plugin.Record, error) {
	var records []plugin.Record
	for p, page := range pages {
		page = strings.TrimSuffix(page, ContinuationSentinel)
		if page == "" {
			continue
		}
		for i, raw := range strings.Split(page, RecordSeparator) {
			rec, err := DecodeRecord(raw)
			if err != nil {
				return nil, &MetadataParseError{Page: p, Record: i, Input: raw, Err: err}
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
