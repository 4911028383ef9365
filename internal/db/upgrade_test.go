package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradeFromLegacySchema opens a database written before the
// source column and the single-active index existed, with two active rows.
func TestMigrate_UpgradeFromLegacySchema(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	legacy := []string{
		`CREATE TABLE scenarios (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			country    TEXT NOT NULL DEFAULT '',
			data       TEXT NOT NULL,
			active     INTEGER NOT NULL DEFAULT 0 CHECK(active IN (0,1)),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`INSERT INTO scenarios VALUES ('old', 'Old', 'Kenya', '{}', 1, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`,
		`INSERT INTO scenarios VALUES ('new', 'New', 'Kenya', '{}', 1, '2024-01-01T00:00:00Z', '2024-06-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var activeID string
	require.NoError(t, db.QueryRow(`SELECT id FROM scenarios WHERE active = 1`).Scan(&activeID))
	assert.Equal(t, "new", activeID)

	var source string
	require.NoError(t, db.QueryRow(`SELECT source FROM scenarios WHERE id = 'old'`).Scan(&source))
	assert.Equal(t, "json", source)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM scenarios WHERE id = 'old'`).Scan(&name))
	assert.Equal(t, "Old", name, "data survives the upgrade")

	require.NoError(t, Migrate(db), "re-running after upgrade is a no-op")
}
