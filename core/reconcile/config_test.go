package reconcile_test

import (
	"testing"
	"time"

	"mod-compat/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    bool
	}{
		{"Database", reconcile.BackendDatabase, true},
		{"Storage", reconcile.BackendStorage, true},
		{"Invalid", "redis", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := reconcile.Config{MetadataBackend: tt.backend}
			assert.Equal(t, tt.want, c.IsValidBackend())
		})
	}
}

func TestConfig_DiffCacheTTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, reconcile.Config{DiffCacheTTLSeconds: 300}.DiffCacheTTL())
	assert.Equal(t, time.Duration(0), reconcile.Config{DiffCacheTTLSeconds: -1}.DiffCacheTTL())
	assert.NotNil(t, reconcile.Config{DiffCacheSize: 4}.NewCache())
}
