//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/config"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
}

func TestInitializeDatabase_ConnectionFailure(t *testing.T) {
	// An unreachable URI must degrade to nil components, not panic.
	components := InitializeDatabase(config.DatabaseConfig{
		Enabled:      true,
		URI:          "mongodb://127.0.0.1:1/?connectTimeoutMS=100&serverSelectionTimeoutMS=100",
		DatabaseName: "unreachable",
	})
	assert.Nil(t, components)
}
