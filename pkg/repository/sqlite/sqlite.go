package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/repository"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
	"github.com/rahulpawar166/folio/pkg/utils/safe"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// Repository stores preferences in a local SQLite file.
type Repository struct {
	db *sql.DB
}

var _ interfaces.PreferenceRepository = (*Repository)(nil)

// New opens (and creates if needed) the database at path. Use ":memory:" for a private in-memory
// database.
func New(ctx context.Context, path string) (*Repository, error) {
	if path == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "database path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to enable WAL", goerr.V("path", path))
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to initialize schema", goerr.V("path", path))
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) GetPreference(ctx context.Context, key types.PreferenceKey) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key.String()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to get preference", goerr.V("key", key))
	}
	return value, true, nil
}

func (r *Repository) PutPreference(ctx context.Context, key types.PreferenceKey, value string) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "preference key is empty")
	}

	query := `
	INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key.String(), value, logging.CtxTime(ctx).UTC()); err != nil {
		return goerr.Wrap(err, "failed to put preference", goerr.V("key", key))
	}
	return nil
}
