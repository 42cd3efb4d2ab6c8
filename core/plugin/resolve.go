package plugin

import (
	"errors"
	"fmt"
)

// ErrUnresolvedLevel reports a Resolver that failed or had no opinion.
var ErrUnresolvedLevel = errors.New("variable level unresolved")

// Resolver decides the concrete level of a variable plugin from the remote lobby metadata.
type Resolver func(metadata map[string]string) (CompatibilityLevel, error)

// ResolveLevel returns the concrete level of the record for the given lobby metadata.
//
// Non-variable levels are returned unchanged. A variable record without a resolver, or
// whose resolver errors, panics, or answers variable/unset/unknown, collapses to
// LevelClientOnly. The error is non-nil only when a resolver misbehaved.
func (r Record) ResolveLevel(metadata map[string]string) (level CompatibilityLevel, err error) {
	if r.Level != LevelVariable {
		return r.Level, nil
	}
	if r.Resolver == nil {
		return LevelClientOnly, nil
	}

	defer func() {
		if p := recover(); p != nil {
			level = LevelClientOnly
			err = fmt.Errorf("%w: %s: resolver panicked: %v", ErrUnresolvedLevel, r.GUID, p)
		}
	}()

	resolved, rerr := r.Resolver(metadata)
	switch {
	case rerr != nil:
		return LevelClientOnly, fmt.Errorf("%w: %s: %w", ErrUnresolvedLevel, r.GUID, rerr)
	case resolved == LevelVariable || resolved == LevelUnset || !resolved.Valid():
		return LevelClientOnly, fmt.Errorf("%w: %s: resolver returned %q", ErrUnresolvedLevel, r.GUID, resolved)
	}
	return resolved, nil
}

// Resolved returns a copy of the record with its level made concrete.
// The copy never carries a resolver.
func (r Record) Resolved(metadata map[string]string) (Record, error) {
	level, err := r.ResolveLevel(metadata)
	r.Level = level
	r.Resolver = nil
	return r, err
}

// ResolveAll resolves every record, exactly once each, and collects resolver failures.
func ResolveAll(records []Record, metadata map[string]string) ([]Record, []error) {
	out := make([]Record, len(records))
	var errs []error
	for i, rec := range records {
		resolved, err := rec.Resolved(metadata)
		if err != nil {
			errs = append(errs, err)
		}
		out[i] = resolved
	}
	return out, errs
}
