package store

import (
	"database/sql"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/migrations"
)

// DB wraps the raw *sql.DB handle so repositories share one connection pool
// and the migration entry point.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
