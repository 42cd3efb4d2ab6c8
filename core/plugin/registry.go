package plugin

import (
	"fmt"
	"sync"
)

// Registry is the local plugin inventory, kept in registration order.
//
// Registering a GUID that is already present replaces the previous record in place
// (last registration wins). Listeners added with OnChange run after every mutation.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	records    map[string]Record
	generation uint64

	hooksMu sync.RWMutex
	hooks   []func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[string]Record),
	}
}

// Register adds or replaces a plugin record.
// A variable record without a resolver is stored as client_only. A record declaring a
// level without a strictness is stored with StrictnessNone.
func (r *Registry) Register(rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.Level == LevelVariable && rec.Resolver == nil {
		rec.Level = LevelClientOnly
	}
	if rec.Level != LevelUnset && rec.Strictness == StrictnessUnset {
		rec.Strictness = StrictnessNone
	}

	r.mu.Lock()
	if _, exists := r.records[rec.GUID]; !exists {
		r.order = append(r.order, rec.GUID)
	}
	r.records[rec.GUID] = rec
	r.generation++
	r.mu.Unlock()

	r.notify()
	return nil
}

// Unregister removes a plugin record.
func (r *Registry) Unregister(guid string) error {
	r.mu.Lock()
	if _, exists := r.records[guid]; !exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotRegistered, guid)
	}
	delete(r.records, guid)
	for i, g := range r.order {
		if g == guid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.generation++
	r.mu.Unlock()

	r.notify()
	return nil
}

// Get returns the record registered under guid.
func (r *Registry) Get(guid string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[guid]
	return rec, ok
}

// List returns a copy of all records in registration order.
func (r *Registry) List() []Record {
	records, _ := r.Snapshot()
	return records
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Snapshot returns the records in registration order together with the generation
// they belong to. The generation increases on every mutation.
func (r *Registry) Snapshot() ([]Record, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.order))
	for _, guid := range r.order {
		out = append(out, r.records[guid])
	}
	return out, r.generation
}

// OnChange registers a listener invoked after each Register or Unregister.
// Listeners must not mutate the registry.
func (r *Registry) OnChange(fn func()) {
	r.hooksMu.Lock()
	r.hooks = append(r.hooks, fn)
	r.hooksMu.Unlock()
}

func (r *Registry) notify() {
	r.hooksMu.RLock()
	hooks := make([]func(), len(r.hooks))
	copy(hooks, r.hooks)
	r.hooksMu.RUnlock()

	for _, fn := range hooks {
		fn()
	}
}
