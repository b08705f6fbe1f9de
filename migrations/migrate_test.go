package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"groups", "group_items", "settings"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SeedsDefaultDBPath(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key='db_path'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "items.DB", value)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_GroupNameUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	_, err := db.Exec(`INSERT INTO groups (name) VALUES ('Цигари')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO groups (name) VALUES ('Цигари')`)
	require.Error(t, err)
}

func TestMigrate_MembershipUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	_, err := db.Exec(`INSERT INTO groups (name) VALUES ('Алкохол')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO group_items (group_id, item_id) VALUES (1, 7)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO group_items (group_id, item_id) VALUES (1, 7)`)
	require.Error(t, err)
}
