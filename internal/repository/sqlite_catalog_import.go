package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteCatalogImportRepo implements CatalogImportRepo using a SQLite database.
type SQLiteCatalogImportRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogImportRepo creates a new SQLiteCatalogImportRepo.
func NewSQLiteCatalogImportRepo(conn db.DBTX) *SQLiteCatalogImportRepo {
	return &SQLiteCatalogImportRepo{db: conn}
}

func (r *SQLiteCatalogImportRepo) Create(ctx context.Context, imp *domain.CatalogImport) error {
	query := `INSERT INTO catalog_imports (id, source, accommodation_count, activity_count, imported_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		imp.ID,
		imp.Source,
		imp.AccommodationCount,
		imp.ActivityCount,
		imp.ImportedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog import: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogImportRepo) Latest(ctx context.Context) (*domain.CatalogImport, error) {
	query := `SELECT id, source, accommodation_count, activity_count, imported_at
		FROM catalog_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`
	imp, err := scanCatalogImport(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog import: %w", ErrNotFound)
		}
		return nil, err
	}
	return imp, nil
}

func (r *SQLiteCatalogImportRepo) List(ctx context.Context) ([]*domain.CatalogImport, error) {
	query := `SELECT id, source, accommodation_count, activity_count, imported_at
		FROM catalog_imports ORDER BY imported_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog imports: %w", err)
	}
	defer rows.Close()

	var out []*domain.CatalogImport
	for rows.Next() {
		imp, err := scanCatalogImport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog imports: %w", err)
	}
	return out, nil
}

func scanCatalogImport(row rowScanner) (*domain.CatalogImport, error) {
	var imp domain.CatalogImport
	var importedAt string
	err := row.Scan(&imp.ID, &imp.Source, &imp.AccommodationCount, &imp.ActivityCount, &importedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning catalog import: %w", err)
	}
	imp.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	return &imp, nil
}
