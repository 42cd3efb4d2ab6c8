// Package lobby serves lobby metadata and compatibility decisions.
//
// Lobby metadata is a flat string map stored either in the lobby_metadata table or as
// one JSON object per lobby in the bucket (compat.metadata_backend). Hosts publish their
// inventory into it; clients read it back through the cached reconciler to get a diff,
// a join decision, or a sorted lobby list.
//
// # Routes
//
//   - GET  /lobbies                     lobbies sorted by compatibility, checksum matches first
//   - POST /lobbies/sort                sort an explicit filtered/all id pair
//   - POST /lobbies/filter              keep lobbies whose checksum matches
//   - PUT  /lobbies/:id/metadata        replace a lobby's metadata
//   - GET  /lobbies/:id/metadata        read a lobby's metadata
//   - POST /lobbies/:id/publish         publish the local inventory (host role)
//   - GET  /lobbies/:id/diff?category=  diff against the local inventory
//   - GET  /lobbies/:id/join            join decision
package lobby
