//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Optimizer: config.OptimizerConfig{
					MaxOptions:     5,
					Workers:        4,
					QuoteCacheSize: 1000,
					QuoteCacheTTL:  5 * time.Minute,
				},
			},
		},
		{
			name: "creates router with API key auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
		{
			name: "creates router with database disabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}
