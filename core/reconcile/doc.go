// Package reconcile compares the local plugin inventory with the inventory a lobby host
// published and classifies every plugin.
//
// The package consists of four parts:
//
// 1. Engine: Reconcile builds a LobbyDiff from a client inventory and a lobby inventory.
//    Lobby-declared plugins are classified first, in lobby order, followed by plugins only
//    the client has, in client order.
//
// 2. Classification: a LobbyDiff collapses to a LobbyCompatibility (compatible,
//    incompatible or unknown) and can be filtered by display Category.
//
// 3. Sorting: SortLobbies orders search results compatible first, then presumed
//    compatible (unknown), then incompatible.
//
// 4. Cache: DiffCache memoizes diffs per lobby id in a bounded, expiring LRU with
//    singleflight protection against duplicate builds. Reconciler ties the cache to a
//    metadata source and the local registry.
//
// # Classification Rules
//
// For a plugin declared by the lobby:
//   - no metadata on the lobby side: compatible when the client has the same version,
//     unknown otherwise;
//   - missing on the client: client_missing_mod when the lobby declares "everyone",
//     compatible otherwise;
//   - declared levels differ: mod_version_mismatch;
//   - level other than client_only and the versions fail the client's strictness:
//     mod_version_mismatch;
//   - otherwise compatible.
//
// For a plugin only the client has:
//   - no metadata: unknown;
//   - "everyone" or "client_optional": server_missing_mod;
//   - otherwise compatible.
//
// Variable levels are resolved once, against the lobby metadata, before either pass.
//
// # Usage Example
//
//	diff := reconcile.Reconcile(registry.List(), lobbyRecords, lobbyMetadata)
//	switch diff.Classify() {
//	case reconcile.LobbyIncompatible:
//	    for _, e := range diff.Filter(reconcile.CategoryIncompatible) { ... }
//	}
package reconcile
