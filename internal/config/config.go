// Package config loads the compiler driver's configuration from the
// environment (optionally via a .env file), then lets command-line flags
// override it (cli.go).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the driver's configuration.
type Config struct {
	Root         string
	Include      []string
	Exclude      []string
	CacheDSN     string
	LibSQLToken  string
	Debug        bool
	Verbose      bool
	JSONOutput   bool
	SkipDataflow bool
}

// Load reads a ".env" file if present (ignored if absent; a missing .env
// is not an error) then builds a Config from environment variables,
// applying the defaults a freshly checked-out project should work with.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Root:     os.Getenv("TSZ_ROOT"),
		CacheDSN: os.Getenv("TSZ_CACHE_DSN"),
		LibSQLToken: os.Getenv("TSZ_LIBSQL_AUTH_TOKEN"),
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.CacheDSN == "" {
		cfg.CacheDSN = ".tsz/cache.db"
	}

	cfg.Include = splitNonEmpty(os.Getenv("TSZ_INCLUDE"))
	cfg.Exclude = splitNonEmpty(os.Getenv("TSZ_EXCLUDE"))

	cfg.Debug = envBool("TSZ_DEBUG", false)
	cfg.Verbose = envBool("TSZ_VERBOSE", false)
	cfg.JSONOutput = envBool("TSZ_JSON", false)
	cfg.SkipDataflow = envBool("TSZ_SKIP_DATAFLOW", false)

	return cfg
}

func envBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// splitNonEmpty splits a comma-separated env var, dropping empty/blank
// entries; an unset var yields nil (the caller's own default applies).
func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
