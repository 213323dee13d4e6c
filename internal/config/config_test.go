package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var configEnvVars = []string{
	"TSZ_ROOT", "TSZ_CACHE_DSN", "TSZ_LIBSQL_AUTH_TOKEN", "TSZ_INCLUDE",
	"TSZ_EXCLUDE", "TSZ_DEBUG", "TSZ_VERBOSE", "TSZ_JSON", "TSZ_SKIP_DATAFLOW",
}

func clearConfigEnvVars() {
	for _, name := range configEnvVars {
		os.Unsetenv(name)
	}
}

func TestLoadDefaultValues(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	cfg := Load()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, ".tsz/cache.db", cfg.CacheDSN)
	assert.Nil(t, cfg.Include)
	assert.Nil(t, cfg.Exclude)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.JSONOutput)
	assert.False(t, cfg.SkipDataflow)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("TSZ_ROOT", "/srv/project")
	os.Setenv("TSZ_CACHE_DSN", "libsql://example.turso.io")
	os.Setenv("TSZ_INCLUDE", "src/**/*.ts, lib/**/*.tsx")
	os.Setenv("TSZ_EXCLUDE", "**/*.spec.ts")
	os.Setenv("TSZ_DEBUG", "true")
	os.Setenv("TSZ_JSON", "1")

	cfg := Load()

	assert.Equal(t, "/srv/project", cfg.Root)
	assert.Equal(t, "libsql://example.turso.io", cfg.CacheDSN)
	assert.Equal(t, []string{"src/**/*.ts", "lib/**/*.tsx"}, cfg.Include)
	assert.Equal(t, []string{"**/*.spec.ts"}, cfg.Exclude)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.JSONOutput)
}

func TestLoadIgnoresUnparsableBoolEnvVar(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("TSZ_VERBOSE", "not-a-bool")

	cfg := Load()
	assert.False(t, cfg.Verbose)
}
