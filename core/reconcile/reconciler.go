package reconcile

import (
	"context"

	"mod-compat/core/plugin"
	"mod-compat/core/wire"
)

// MetadataSource provides the raw metadata of a lobby.
type MetadataSource interface {
	// Metadata returns the key/value metadata published for the lobby.
	Metadata(ctx context.Context, lobbyID string) (map[string]string, error)
}

// Inventory provides the local plugin inventory. *plugin.Registry satisfies it.
type Inventory interface {
	List() []plugin.Record
}

// Reconciler computes lobby diffs for the local inventory, caching them per lobby.
type Reconciler struct {
	inventory Inventory
	source    MetadataSource
	cache     *DiffCache
}

// NewReconciler creates a reconciler. cache may be nil to disable caching.
func NewReconciler(inventory Inventory, source MetadataSource, cache *DiffCache) *Reconciler {
	return &Reconciler{
		inventory: inventory,
		source:    source,
		cache:     cache,
	}
}

// NewRegistryReconciler creates a reconciler over a registry whose cache is purged on
// every registry change.
func NewRegistryReconciler(reg *plugin.Registry, source MetadataSource, cache *DiffCache) *Reconciler {
	if cache != nil {
		reg.OnChange(cache.Purge)
	}
	return NewReconciler(reg, source, cache)
}

// Diff returns the diff for a lobby, loading its metadata through the source.
// Only source failures are returned as errors; an undecodable inventory yields an empty,
// unpublished diff carrying ParseError.
func (r *Reconciler) Diff(ctx context.Context, lobbyID string) (*LobbyDiff, error) {
	build := func() (*LobbyDiff, error) {
		metadata, err := r.source.Metadata(ctx, lobbyID)
		if err != nil {
			return nil, err
		}
		return r.DiffMetadata(metadata), nil
	}

	if r.cache == nil {
		return build()
	}
	return r.cache.GetOrBuild(lobbyID, build)
}

// DiffMetadata reconciles the local inventory against already loaded lobby metadata
// without touching the cache.
func (r *Reconciler) DiffMetadata(metadata map[string]string) *LobbyDiff {
	lobby, published, err := wire.ReadInventory(metadata)
	if err != nil {
		return &LobbyDiff{ParseError: err}
	}
	if !published {
		return &LobbyDiff{}
	}

	diff := Reconcile(r.inventory.List(), lobby, metadata)
	return &diff
}

// Invalidate drops the cached diff of a lobby.
func (r *Reconciler) Invalidate(lobbyID string) {
	if r.cache != nil {
		r.cache.Invalidate(lobbyID)
	}
}

// Cache returns the diff cache, or nil.
func (r *Reconciler) Cache() *DiffCache {
	return r.cache
}
