package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"mod-compat/core/plugin"
)

// Compute returns the checksum of the given inventory, or "" when nothing requires
// universal presence.
func Compute(records []plugin.Record) string {
	required := make([]plugin.Record, 0, len(records))
	for _, rec := range records {
		if rec.Level == plugin.LevelEveryone {
			required = append(required, rec)
		}
	}
	if len(required) == 0 {
		return ""
	}

	sort.SliceStable(required, func(i, j int) bool {
		return required[i].GUID < required[j].GUID
	})

	var sb strings.Builder
	for _, rec := range required {
		sb.WriteString(rec.GUID)
		sb.WriteString(rec.Version.Truncate(rec.Strictness))
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Source provides inventory snapshots tagged with a generation counter.
// *plugin.Registry satisfies it.
type Source interface {
	Snapshot() ([]plugin.Record, uint64)
}

// Generator caches the checksum of a Source until the source changes or the cache is
// invalidated.
type Generator struct {
	source Source

	mu         sync.Mutex
	value      string
	generation uint64
	valid      bool
}

// NewGenerator creates a generator over the source.
func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// NewRegistryGenerator creates a generator over a registry and invalidates it on every
// registry change.
func NewRegistryGenerator(reg *plugin.Registry) *Generator {
	g := NewGenerator(reg)
	reg.OnChange(g.Invalidate)
	return g
}

// Checksum returns the cached checksum, recomputing it when stale.
func (g *Generator) Checksum() string {
	records, generation := g.source.Snapshot()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.valid && g.generation == generation {
		return g.value
	}

	g.value = Compute(records)
	g.generation = generation
	g.valid = true
	return g.value
}

// Invalidate drops the cached value.
func (g *Generator) Invalidate() {
	g.mu.Lock()
	g.valid = false
	g.mu.Unlock()
}
