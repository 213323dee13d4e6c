package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		Root:     ".",
		CacheDSN: ".tsz/cache.db",
	}
}

func TestApplyFlagsOverridesRootAndCacheDSN(t *testing.T) {
	cfg := baseConfig()
	rest, err := ApplyFlags(cfg, []string{"--root", "/tmp/proj", "--cache-dsn", ":memory:"})
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "/tmp/proj", cfg.Root)
	assert.Equal(t, ":memory:", cfg.CacheDSN)
}

func TestApplyFlagsLeavesUnsetIncludeExcludeAtConfigDefault(t *testing.T) {
	cfg := baseConfig()
	cfg.Include = []string{"src/**/*.ts"}

	_, err := ApplyFlags(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.ts"}, cfg.Include)
}

func TestApplyFlagsOverridesIncludeWhenPassed(t *testing.T) {
	cfg := baseConfig()
	cfg.Include = []string{"src/**/*.ts"}

	_, err := ApplyFlags(cfg, []string{"--include", "lib/**/*.tsx"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/**/*.tsx"}, cfg.Include)
}

func TestApplyFlagsParsesBooleanShorthands(t *testing.T) {
	cfg := baseConfig()
	_, err := ApplyFlags(cfg, []string{"-d", "-v", "-j"})
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.JSONOutput)
}

func TestApplyFlagsReturnsRemainingPositionalArgs(t *testing.T) {
	cfg := baseConfig()
	rest, err := ApplyFlags(cfg, []string{"--root", ".", "check.ts", "other.ts"})
	require.NoError(t, err)
	assert.Equal(t, []string{"check.ts", "other.ts"}, rest)
}

func TestApplyFlagsRejectsUnknownFlag(t *testing.T) {
	cfg := baseConfig()
	_, err := ApplyFlags(cfg, []string{"--not-a-real-flag"})
	assert.Error(t, err)
}
