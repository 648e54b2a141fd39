// Package sqlite implements a board Store backed by a SQLite database.
// Categories and items are rows ordered by an ordinal column; the cursor
// is never stored.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "board.db"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite.
type Backend struct {
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger}
}

// Attach opens the database in config.DataDir, creating the directory and
// schema if needed. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	// A single connection keeps the foreign_keys pragma in effect.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	b.logger.Debug("sqlite store attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the database. After Detach, Load and Save return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	b.db = nil
	b.attached = false
	return nil
}

// Close implements types.Store.
func (b *Backend) Close() error {
	return b.Detach()
}

func initSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
