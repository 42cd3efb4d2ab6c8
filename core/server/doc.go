// Package server holds the HTTP server configuration and constants.
//
// The start command reads these settings to bind the listener, protect the API with a
// key, and decide whether the instance acts as a lobby host (it may publish its
// inventory into lobby metadata) or as a joining client.
package server
