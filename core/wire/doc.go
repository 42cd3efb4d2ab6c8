// Package wire is the compact plugin inventory format carried in lobby metadata.
//
// Lobby metadata is a small string key/value store (8192 bytes per value at most), so an
// inventory is written as a string of records, split over as many pages as needed.
//
// # Record Format
//
// A record is four fields joined by ';':
//
//	guid;version;level;strictness
//
// The version is the dotted numeric triple. Level and strictness are single characters
// looked up in the code tables of this package; an empty or unknown code decodes to the
// unset value, which the reconciler treats as "no compatibility metadata". The variable
// level has no code and is never transmitted.
//
// Records are joined by '&'. Pages are stored under plugins0, plugins1, ...; every page
// but the last ends with the continuation sentinel '@'. A record is never split across
// pages.
//
// # Budget
//
// Each page holds at most MaxMetadataBytes minus a configurable reservation (7800 bytes
// with the default reservation). When the whole inventory does not fit in the allowed
// number of pages, records are ranked by how strongly they constrain the other side and
// the longest prefix that fits is kept.
package wire
