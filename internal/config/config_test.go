package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/caverns/internal/config"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
)

func TestLoadDefaults(t *testing.T) {
	// Setenv registers the restore, Unsetenv clears it for the test.
	t.Setenv("CAVERNS_CATALOG", "classic")
	require.NoError(t, os.Unsetenv("CAVERNS_CATALOG"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, catalog.CatalogClassic, cfg.Catalog)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CAVERNS_CATALOG", "elite")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, catalog.CatalogElite, cfg.Catalog)
}

func TestLoadRejectsUnknownCatalog(t *testing.T) {
	t.Setenv("CAVERNS_CATALOG", "nightmare")

	cfg, err := config.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "nightmare")
}
