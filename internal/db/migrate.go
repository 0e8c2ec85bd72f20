package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillAdultsOnly(db); err != nil {
		return fmt.Errorf("backfilling adults_only flags: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS catalog_imports (
		id                  TEXT PRIMARY KEY,
		source              TEXT NOT NULL,
		accommodation_count INTEGER NOT NULL DEFAULT 0,
		activity_count      INTEGER NOT NULL DEFAULT 0,
		imported_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS accommodations (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		location   TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT '',
		import_id  TEXT REFERENCES catalog_imports(id) ON DELETE SET NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		category             TEXT NOT NULL
		                     CHECK(category IN ('mais_procurados','experiencias','maritimos','quadriciclos','privativos','pacotes','transfers')),
		unit_type            TEXT NOT NULL
		                     CHECK(unit_type IN ('full_day','half_day','transfer','experience')),
		duration             TEXT NOT NULL DEFAULT '',
		price_adult_cents    INTEGER NOT NULL DEFAULT 0,
		price_child_cents    INTEGER NOT NULL DEFAULT 0,
		price_infant_cents   INTEGER NOT NULL DEFAULT 0,
		deposit_adult_cents  INTEGER,
		deposit_child_cents  INTEGER,
		deposit_infant_cents INTEGER,
		min_adults           INTEGER NOT NULL DEFAULT 1,
		max_capacity         INTEGER NOT NULL CHECK(max_capacity > 0),
		description          TEXT NOT NULL DEFAULT '',
		requirements         TEXT NOT NULL DEFAULT '[]',
		includes             TEXT NOT NULL DEFAULT '[]',
		excludes             TEXT NOT NULL DEFAULT '[]',
		schedule             TEXT NOT NULL DEFAULT '',
		import_id            TEXT REFERENCES catalog_imports(id) ON DELETE SET NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_imports_imported ON catalog_imports(imported_at)`,

	// Catalog-level adults-only flag, previously only known to the validator table
	`ALTER TABLE activities ADD COLUMN adults_only INTEGER NOT NULL DEFAULT 0`,
}

// legacyAdultsOnlyIDs are activities that were restricted to adults before
// the flag was stored with the catalog.
var legacyAdultsOnlyIDs = []string{"quadriciclo_praia"}

// migrateBackfillAdultsOnly sets the adults_only flag on rows imported
// before the column existed. Idempotent.
func migrateBackfillAdultsOnly(db *sql.DB) error {
	for _, id := range legacyAdultsOnlyIDs {
		if _, err := db.Exec(`UPDATE activities SET adults_only = 1 WHERE id = ? AND adults_only = 0`, id); err != nil {
			return fmt.Errorf("flagging %s: %w", id, err)
		}
	}
	return nil
}
