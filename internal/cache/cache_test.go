package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectCreatesCompilationCacheTable(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer func() {
		sqlDB, derr := db.DB()
		require.NoError(t, derr)
		sqlDB.Close()
	}()

	assert.True(t, db.Migrator().HasTable(&Record{}))
}

func TestIsURLRecognizesRemoteDSNs(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"libsql://test.turso.io", true},
		{"/path/to/cache.db", false},
		{":memory:", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, isURL(tt.dsn), "dsn=%q", tt.dsn)
	}
}

func TestStorePutThenLookupRoundTrips(t *testing.T) {
	store, err := Open(":memory:", false)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	boundAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Put("./a.ts", "hash-1", 2, 5, boundAt))

	rec, ok, err := store.Lookup("./a.ts", "hash-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, rec.DiagnosticCount)
	assert.Equal(t, 5, rec.SymbolCount)
	assert.Equal(t, store.RunID, rec.RunID)
	assert.True(t, boundAt.Equal(rec.BoundAt))
}

func TestStoreLookupMissReportsFalseWithoutError(t *testing.T) {
	store, err := Open(":memory:", false)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	_, ok, err := store.Lookup("./missing.ts", "hash-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorePutEvictsStaleHashForSameFile(t *testing.T) {
	store, err := Open(":memory:", false)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	require.NoError(t, store.Put("./a.ts", "hash-old", 1, 1, time.Now()))
	require.NoError(t, store.Put("./a.ts", "hash-new", 2, 2, time.Now()))

	_, ok, err := store.Lookup("./a.ts", "hash-old")
	require.NoError(t, err)
	assert.False(t, ok, "stale hash for the same file should have been evicted")

	rec, ok, err := store.Lookup("./a.ts", "hash-new")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, rec.DiagnosticCount)
}

func TestStorePutOnSameHashUpdatesInPlace(t *testing.T) {
	store, err := Open(":memory:", false)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	require.NoError(t, store.Put("./a.ts", "hash-1", 1, 1, time.Now()))
	require.NoError(t, store.Put("./a.ts", "hash-1", 9, 9, time.Now()))

	rec, ok, err := store.Lookup("./a.ts", "hash-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, rec.DiagnosticCount)
	assert.Equal(t, 9, rec.SymbolCount)
}
