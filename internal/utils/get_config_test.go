package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nTIMEZONE: Asia/Kolkata\nAPP_PORT: \"9090\"\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	LoadConfigFile(path)
	t.Cleanup(func() { config = Config{} })

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "7070", GetConfig("APP_PORT"), "environment overrides yaml")
	assert.Equal(t, "simulated", GetConfig("ANALYSIS_PROVIDER"), "default applies when unset")
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
	assert.Equal(t, "Asia/Kolkata", Location().String())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	config = Config{Timezone: "Mars/Olympus"}
	t.Cleanup(func() { config = Config{} })

	assert.Equal(t, time.UTC, Location())
}
