package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_CatalogWithoutAdultsOnly simulates a database
// created before activities carried the adults_only column. Existing rows
// must survive, gain the column and be backfilled.
func TestMigrate_UpgradePath_CatalogWithoutAdultsOnly(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	legacyStatements := []string{
		`CREATE TABLE IF NOT EXISTS catalog_imports (
			id                  TEXT PRIMARY KEY,
			source              TEXT NOT NULL,
			accommodation_count INTEGER NOT NULL DEFAULT 0,
			activity_count      INTEGER NOT NULL DEFAULT 0,
			imported_at         TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id                   TEXT PRIMARY KEY,
			name                 TEXT NOT NULL,
			category             TEXT NOT NULL,
			unit_type            TEXT NOT NULL,
			duration             TEXT NOT NULL DEFAULT '',
			price_adult_cents    INTEGER NOT NULL DEFAULT 0,
			price_child_cents    INTEGER NOT NULL DEFAULT 0,
			price_infant_cents   INTEGER NOT NULL DEFAULT 0,
			deposit_adult_cents  INTEGER,
			deposit_child_cents  INTEGER,
			deposit_infant_cents INTEGER,
			min_adults           INTEGER NOT NULL DEFAULT 1,
			max_capacity         INTEGER NOT NULL,
			description          TEXT NOT NULL DEFAULT '',
			requirements         TEXT NOT NULL DEFAULT '[]',
			includes             TEXT NOT NULL DEFAULT '[]',
			excludes             TEXT NOT NULL DEFAULT '[]',
			schedule             TEXT NOT NULL DEFAULT '',
			import_id            TEXT REFERENCES catalog_imports(id) ON DELETE SET NULL,
			updated_at           TEXT NOT NULL
		)`,
		`INSERT INTO activities (id, name, category, unit_type, price_adult_cents, max_capacity, updated_at)
			VALUES ('quadriciclo_praia', 'Quadriciclo na Praia', 'quadriciclos', 'half_day', 35000, 8, '2024-11-01T00:00:00Z')`,
		`INSERT INTO activities (id, name, category, unit_type, price_adult_cents, max_capacity, updated_at)
			VALUES ('recife_fora', 'Passeio Recife de Fora', 'maritimos', 'half_day', 12000, 40, '2024-11-01T00:00:00Z')`,
	}
	for _, stmt := range legacyStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var quad, recife int
	require.NoError(t, db.QueryRow(`SELECT adults_only FROM activities WHERE id = 'quadriciclo_praia'`).Scan(&quad))
	require.NoError(t, db.QueryRow(`SELECT adults_only FROM activities WHERE id = 'recife_fora'`).Scan(&recife))
	assert.Equal(t, 1, quad)
	assert.Equal(t, 0, recife)

	var price int64
	require.NoError(t, db.QueryRow(`SELECT price_adult_cents FROM activities WHERE id = 'recife_fora'`).Scan(&price))
	assert.Equal(t, int64(12000), price)

	// accommodations did not exist in the legacy schema
	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='accommodations'`).Scan(&name))

	require.NoError(t, Migrate(db), "second run after upgrade")
}
