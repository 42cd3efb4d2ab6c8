package reconcile

import "time"

// Config holds configuration for publishing inventories and caching lobby diffs.
type Config struct {
	// ReservedBytes is subtracted from the 8192-byte metadata ceiling to get the page budget.
	ReservedBytes int `mapstructure:"reserved_bytes" default:"392"`
	// MaxPages bounds how many plugin pages are published.
	MaxPages int `mapstructure:"max_pages" default:"8"`
	// DiffCacheSize is the number of lobby diffs kept in memory.
	DiffCacheSize int `mapstructure:"diff_cache_size" default:"256"`
	// DiffCacheTTLSeconds is how long a lobby diff stays cached.
	DiffCacheTTLSeconds int `mapstructure:"diff_cache_ttl_seconds" default:"300"`
	// MetadataBackend selects where lobby metadata lives (database, storage).
	MetadataBackend string `mapstructure:"metadata_backend" default:"database"`
	// MetadataPrefix is the object prefix used by the storage backend.
	MetadataPrefix string `mapstructure:"metadata_prefix" default:"lobbies"`
}

const (
	BackendDatabase = "database"
	BackendStorage  = "storage"
)

// IsValidBackend checks if the configured metadata backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.MetadataBackend {
	case BackendDatabase, BackendStorage:
		return true
	default:
		return false
	}
}

// DiffCacheTTL returns the cache TTL as a duration.
func (c Config) DiffCacheTTL() time.Duration {
	if c.DiffCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.DiffCacheTTLSeconds) * time.Second
}

// NewCache builds the diff cache described by the configuration.
func (c Config) NewCache() *DiffCache {
	return NewDiffCache(c.DiffCacheSize, c.DiffCacheTTL())
}
