// Package plugin holds the compatibility data model shared by every other part of mod-compat.
//
// A Record describes one installed plugin (mod) on one side of a lobby: its GUID, its
// version triple, the compatibility level it declares and how strictly its version has to
// match the other side.
//
// # Compatibility Levels
//
//   - client_only: only the client needs it; never obligates anyone.
//   - server_only: only the host needs it.
//   - everyone: both sides must have it, with matching versions.
//   - client_optional: the host must have it, clients may omit it.
//   - variable: decided at reconciliation time by a Resolver reading the lobby metadata.
//
// An empty level means the record carries no compatibility metadata at all (an
// unattributed plugin, or a remote host that does not run this engine).
//
// # Registry
//
// The Registry is the local, explicit replacement for attribute discovery: plugins are
// registered once at startup (or through the HTTP API) and the registry notifies listeners
// such as the checksum generator and the diff cache whenever its contents change.
//
// # Usage
//
//	reg := plugin.NewRegistry()
//	err := reg.Register(plugin.Record{
//	    GUID:       "com.example.moreitems",
//	    Version:    plugin.MustParseVersion("1.2.0"),
//	    Level:      plugin.LevelEveryone,
//	    Strictness: plugin.StrictnessMinor,
//	})
package plugin
