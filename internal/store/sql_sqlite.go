package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewSQLiteDB opens (creating if necessary) the application SQLite database
// at path and applies all pending migrations.
//
// SQLite allows a single writer; MaxOpenConns is pinned to 1 so concurrent
// handlers serialize on the pool instead of hitting SQLITE_BUSY.
func NewSQLiteDB(path string, logger *logger.Logger) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database %q: %w", path, err)
	}

	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB, logger: logger}
	if err := db.Migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error migrating sqlite database %q: %w", path, err)
	}

	logger.Info().Str("path", path).Msg("sqlite database opened and migrated")
	return db, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE or PRIMARY KEY
// constraint failure. It is the sqlite counterpart of matching
// pgerrcode.UniqueViolation on Postgres.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
