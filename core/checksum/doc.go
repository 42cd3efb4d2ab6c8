// Package checksum computes the lobby pre-filter checksum.
//
// The checksum is a SHA-256 digest (uppercase hex) over every plugin declared as
// "everyone", sorted by GUID with a byte-wise comparison, each contributing its GUID
// followed by its version truncated to its own strictness. There is no separator between
// records; the layout is part of the wire contract with other clients.
//
// An inventory without any "everyone" plugin has the empty checksum, which callers treat
// as "do not filter".
package checksum
