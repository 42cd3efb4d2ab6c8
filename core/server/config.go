package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// Role tells whether this instance hosts lobbies or joins them (host, client).
	Role string `mapstructure:"role" default:"client"`
}

const (
	RoleHost   = "host"
	RoleClient = "client"
)

// IsValidRole checks if the configured role is valid.
func (c Config) IsValidRole() bool {
	switch c.Role {
	case RoleHost, RoleClient:
		return true
	default:
		return false
	}
}

// IsHost reports whether this instance publishes lobby inventories.
func (c Config) IsHost() bool {
	return c.Role == RoleHost
}
