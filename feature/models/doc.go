// Package models defines the tables owned by the service.
//
// The plugins feature persists manual registrations in plugin_registrations and the
// database metadata backend keeps one row per lobby key in lobby_metadata. Tables lists
// both with their columns for the schema integrity check.
package models
