package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// DBFileName is the database file created inside DataDir.
const DBFileName = "breadcrumbs.db"

// store_meta keys.
const (
	metaKeySchemaVersion = "schema_version"
	metaKeyStoreID       = "store_id"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface on a single SQLite database.
// All entity operations are ordinary request-scoped read/modify/persist
// sequences; the only cross-request invariant, case-insensitive tag name
// uniqueness, is enforced atomically by the unique index.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *slog.Logger
}

// NewBackend creates a detached backend; call Attach with a Config.
func NewBackend() *Backend {
	return &Backend{log: slog.Default()}
}

// Attach opens (or creates) the database under config.DataDir, enables
// foreign key enforcement, and applies the schema when missing. The
// database persists across attach cycles. Returns ErrAlreadyAttached if
// called while already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

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
	// Foreign key enforcement is per-connection; the DSN pragma applies
	// it to every connection in the pool.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return err
	}

	b.config = config
	b.db = db
	b.attached = true
	b.log.Info("store attached", "backend", config.Backend, "path", dbPath)
	return nil
}

// Detach closes the database and releases resources. Idempotent: calling
// Detach on a detached backend succeeds. After Detach, entity operations
// return ErrStoreClosed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	b.log.Info("store detached")
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// ready returns the database handle, or ErrStoreClosed when detached.
func (b *Backend) ready() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	return b.db, nil
}

// applySchema creates tables and indexes when missing and seeds
// store_meta with the schema version and a generated store identity.
func applySchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	// Seeded once; later attaches leave existing values in place.
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO store_meta (key, value) VALUES (?, ?)",
		metaKeySchemaVersion, schemaVersion,
	); err != nil {
		return fmt.Errorf("seeding schema version: %w", err)
	}
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO store_meta (key, value) VALUES (?, ?)",
		metaKeyStoreID, uuid.NewString(),
	); err != nil {
		return fmt.Errorf("seeding store id: %w", err)
	}
	return nil
}

// StoreID returns the identity generated for this store on first attach.
func (b *Backend) StoreID(ctx context.Context) (string, error) {
	db, err := b.ready()
	if err != nil {
		return "", err
	}
	var id string
	err = db.QueryRowContext(ctx,
		"SELECT value FROM store_meta WHERE key = ?", metaKeyStoreID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading store id: %w", err)
	}
	return id, nil
}
