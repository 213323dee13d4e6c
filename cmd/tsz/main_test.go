package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCheckCommandReportsCleanBindForValidProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.ts", "let x = 1;")
	writeFile(t, root, "b.ts", "export const y = 2;")

	cmd := newCheckCmd()
	cmd.SetArgs([]string{"--root", root})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestCheckCommandFailsOnParseErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "broken.ts", "let x = ;")

	cmd := newCheckCmd()
	cmd.SetArgs([]string{"--root", root})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestCheckCommandHonorsSkipDataflowFlag(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.ts", "let x; x = 1;")

	cmd := newCheckCmd()
	cmd.SetArgs([]string{"--root", root, "--skip-dataflow"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestBindDumpCommandPrintsFileScopeSymbols(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.ts")
	writeFile(t, root, "a.ts", "export const greeting = 1;")

	cmd := newBindDumpCmd()
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestBindDumpCommandRequiresExactlyOneArg(t *testing.T) {
	cmd := newBindDumpCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestBindDumpCommandReportsMissingFile(t *testing.T) {
	cmd := newBindDumpCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.ts")})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestCacheStatsCommandOpensLocalDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cache.db")

	cmd := newCacheCmd()
	cmd.SetArgs([]string{"stats", "--cache-dsn", dsn})
	err := cmd.Execute()
	assert.NoError(t, err)

	_, statErr := os.Stat(dsn)
	assert.NoError(t, statErr)
}

func TestRootCommandRegistersAllSubcommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "bind-dump")
	assert.Contains(t, names, "cache")
}
