package config

import (
	"github.com/spf13/pflag"
)

// ApplyFlags parses args against a flag set mirroring Config's fields and
// overlays whatever the caller actually passed onto cfg, leaving every
// unset flag's default to cfg's own value (env-derived or built-in).
func ApplyFlags(cfg *Config, args []string) ([]string, error) {
	fs := pflag.NewFlagSet("tsz", pflag.ContinueOnError)

	root := fs.StringP("root", "r", cfg.Root, "Root directory to scan for source files.")
	include := fs.StringSlice("include", cfg.Include, "Include glob patterns (repeatable).")
	exclude := fs.StringSlice("exclude", cfg.Exclude, "Exclude glob patterns (repeatable).")
	cacheDSN := fs.String("cache-dsn", cfg.CacheDSN, "Compilation cache DSN (sqlite file path or libsql:// URL).")
	debug := fs.BoolP("debug", "d", cfg.Debug, "Enable verbose GORM query logging for the cache.")
	verbose := fs.BoolP("verbose", "v", cfg.Verbose, "Enable verbose driver output.")
	jsonOutput := fs.BoolP("json", "j", cfg.JSONOutput, "Emit diagnostics as JSON lines instead of human-readable text.")
	skipDataflow := fs.Bool("skip-dataflow", cfg.SkipDataflow, "Skip the definite-assignment pass.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Root = *root
	if fs.Changed("include") {
		cfg.Include = *include
	}
	if fs.Changed("exclude") {
		cfg.Exclude = *exclude
	}
	cfg.CacheDSN = *cacheDSN
	cfg.Debug = *debug
	cfg.Verbose = *verbose
	cfg.JSONOutput = *jsonOutput
	cfg.SkipDataflow = *skipDataflow

	return fs.Args(), nil
}
