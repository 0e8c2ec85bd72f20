package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteAccommodationRepo implements AccommodationRepo using a SQLite database.
type SQLiteAccommodationRepo struct {
	db db.DBTX
}

// NewSQLiteAccommodationRepo creates a new SQLiteAccommodationRepo.
func NewSQLiteAccommodationRepo(conn db.DBTX) *SQLiteAccommodationRepo {
	return &SQLiteAccommodationRepo{db: conn}
}

const accommodationColumns = `id, name, location, type`

func (r *SQLiteAccommodationRepo) Upsert(ctx context.Context, a *domain.Accommodation, importID string) error {
	query := `INSERT INTO accommodations (id, name, location, type, import_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			type = excluded.type,
			import_id = excluded.import_id,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Location,
		a.Type,
		nullableString(importID),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting accommodation %s: %w", a.ID, err)
	}
	return nil
}

func (r *SQLiteAccommodationRepo) GetByID(ctx context.Context, id string) (*domain.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = ?`
	var a domain.Accommodation
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Location, &a.Type)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning accommodation: %w", err)
	}
	return &a, nil
}

func (r *SQLiteAccommodationRepo) List(ctx context.Context) ([]*domain.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations ORDER BY location, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accommodations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Accommodation
	for rows.Next() {
		var a domain.Accommodation
		if err := rows.Scan(&a.ID, &a.Name, &a.Location, &a.Type); err != nil {
			return nil, fmt.Errorf("scanning accommodation row: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accommodations: %w", err)
	}
	return out, nil
}

func (r *SQLiteAccommodationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accommodations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting accommodations: %w", err)
	}
	return n, nil
}
