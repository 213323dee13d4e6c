// Package cache is a GORM-backed compilation cache: one row per bound
// file, keyed by its path and content hash, so a driver can skip
// re-parsing/re-binding a file whose text hasn't changed since the last
// run that touched this database.
package cache

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	libsql "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one file's cached bind result.
type Record struct {
	ID              uint   `gorm:"primaryKey"`
	RunID           string `gorm:"type:varchar(36);index"`
	FilePath        string `gorm:"type:varchar(1024);uniqueIndex:idx_cache_file_hash"`
	ContentHash     string `gorm:"type:varchar(64);uniqueIndex:idx_cache_file_hash"`
	DiagnosticCount int
	SymbolCount     int
	BoundAt         time.Time
}

func (Record) TableName() string { return "compilation_cache" }

// Connect opens dsn (a local SQLite file path, or a libsql/Turso URL) and
// runs migrations, mirroring the teacher's db.Connect shape but on the
// pure-Go glebarez/sqlite driver instead of a CGO one.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	if !isURL(dsn) {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("cache: create database directory: %w", err)
			}
		}
	}

	config := &gorm.Config{}
	if debug {
		config.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		dialector gorm.Dialector
		conn      *sql.DB
	)
	if isURL(dsn) {
		var (
			connector driver.Connector
			err       error
		)
		token := os.Getenv("TSZ_LIBSQL_AUTH_TOKEN")
		if token != "" {
			connector, err = libsql.NewConnector(dsn, libsql.WithAuthToken(token))
		} else {
			connector, err = libsql.NewConnector(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("cache: create libsql connector: %w", err)
		}
		conn = sql.OpenDB(connector)
		dialector = sqlite.New(sqlite.Config{DriverName: "libsql", Conn: conn, DSN: dsn})
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, fmt.Errorf("cache: connect: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Exec("PRAGMA foreign_keys = ON")
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}
	return db, nil
}

func isURL(dsn string) bool {
	return strings.HasPrefix(dsn, "http://") || strings.HasPrefix(dsn, "https://") || strings.HasPrefix(dsn, "libsql")
}

// Migrate applies the cache schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}

// Store is a Connect'd database plus the RunID stamped into every Record
// this process writes (spec.md doesn't define a cache; this is the
// project driver's own incremental-rebuild support).
type Store struct {
	db    *gorm.DB
	RunID string
}

// Open connects dsn and assigns a fresh RunID to the returned Store.
func Open(dsn string, debug bool) (*Store, error) {
	db, err := Connect(dsn, debug)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, RunID: uuid.NewString()}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Lookup returns the cached record for filePath/contentHash, if any.
func (s *Store) Lookup(filePath, contentHash string) (*Record, bool, error) {
	var rec Record
	err := s.db.Where("file_path = ? AND content_hash = ?", filePath, contentHash).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: lookup %s: %w", filePath, err)
	}
	return &rec, true, nil
}

// Put records filePath's bind result at contentHash, replacing any stale
// record for the same file under a different hash.
func (s *Store) Put(filePath, contentHash string, diagnosticCount, symbolCount int, boundAt time.Time) error {
	if err := s.db.Where("file_path = ? AND content_hash <> ?", filePath, contentHash).
		Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("cache: evict stale record for %s: %w", filePath, err)
	}

	rec := Record{
		RunID:           s.RunID,
		FilePath:        filePath,
		ContentHash:     contentHash,
		DiagnosticCount: diagnosticCount,
		SymbolCount:     symbolCount,
		BoundAt:         boundAt,
	}
	err := s.db.Where("file_path = ? AND content_hash = ?", filePath, contentHash).
		Assign(rec).
		FirstOrCreate(&Record{}).Error
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", filePath, err)
	}
	return nil
}
