// Package plugins exposes the local plugin inventory over HTTP.
//
// Registrations made through the API are validated into the in-memory plugin.Registry
// and, when a database is available, persisted to plugin_registrations so they survive
// restarts. The feature also reports the inventory checksum and the metadata pages the
// inventory would publish as, including any records the page budget drops.
//
// # Routes
//
//   - GET    /plugins           list the inventory in registration order
//   - POST   /plugins           register or replace a plugin
//   - GET    /plugins/checksum  current inventory checksum
//   - GET    /plugins/pages     encoded pages and dropped records
//   - GET    /plugins/:guid     one plugin
//   - DELETE /plugins/:guid     unregister a plugin
package plugins
