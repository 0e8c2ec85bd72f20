package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
// Amounts are stored as integer centavos; list fields as JSON arrays.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

const activityColumns = `id, name, category, unit_type, duration,
	price_adult_cents, price_child_cents, price_infant_cents,
	deposit_adult_cents, deposit_child_cents, deposit_infant_cents,
	min_adults, max_capacity, adults_only, description,
	requirements, includes, excludes, schedule`

func (r *SQLiteActivityRepo) Upsert(ctx context.Context, a *domain.Activity, importID string) error {
	requirements, err := stringListToJSON(a.Requirements)
	if err != nil {
		return fmt.Errorf("encoding requirements: %w", err)
	}
	includes, err := stringListToJSON(a.Includes)
	if err != nil {
		return fmt.Errorf("encoding includes: %w", err)
	}
	excludes, err := stringListToJSON(a.Excludes)
	if err != nil {
		return fmt.Errorf("encoding excludes: %w", err)
	}

	var depAdult, depChild, depInfant any
	if a.Deposit != nil {
		depAdult = int64(a.Deposit.Adult)
		depChild = int64(a.Deposit.Child)
		depInfant = nullableMoneyToValue(a.Deposit.Infant)
	}

	query := `INSERT INTO activities (` + activityColumns + `, import_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			unit_type = excluded.unit_type,
			duration = excluded.duration,
			price_adult_cents = excluded.price_adult_cents,
			price_child_cents = excluded.price_child_cents,
			price_infant_cents = excluded.price_infant_cents,
			deposit_adult_cents = excluded.deposit_adult_cents,
			deposit_child_cents = excluded.deposit_child_cents,
			deposit_infant_cents = excluded.deposit_infant_cents,
			min_adults = excluded.min_adults,
			max_capacity = excluded.max_capacity,
			adults_only = excluded.adults_only,
			description = excluded.description,
			requirements = excluded.requirements,
			includes = excluded.includes,
			excludes = excluded.excludes,
			schedule = excluded.schedule,
			import_id = excluded.import_id,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.Category),
		string(a.Type),
		a.Duration,
		int64(a.Pricing.Adult),
		int64(a.Pricing.Child),
		int64(a.Pricing.Infant),
		depAdult,
		depChild,
		depInfant,
		a.MinAdults,
		a.MaxCapacity,
		boolToInt(a.AdultsOnly),
		a.Description,
		requirements,
		includes,
		excludes,
		a.Schedule,
		nullableString(importID),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting activity %s: %w", a.ID, err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY category, name`
	return r.query(ctx, query)
}

func (r *SQLiteActivityRepo) ListByCategory(ctx context.Context, c domain.ActivityCategory) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE category = ? ORDER BY name`
	return r.query(ctx, query, string(c))
}

func (r *SQLiteActivityRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting activities: %w", err)
	}
	return n, nil
}

func (r *SQLiteActivityRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanActivity scans one activity from a *sql.Row or *sql.Rows. A
// sql.ErrNoRows from a *sql.Row is returned unwrapped.
func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var category, unit, requirements, includes, excludes string
	var priceAdult, priceChild, priceInfant int64
	var depAdult, depChild, depInfant sql.NullInt64
	var adultsOnly int

	err := row.Scan(
		&a.ID, &a.Name, &category, &unit, &a.Duration,
		&priceAdult, &priceChild, &priceInfant,
		&depAdult, &depChild, &depInfant,
		&a.MinAdults, &a.MaxCapacity, &adultsOnly, &a.Description,
		&requirements, &includes, &excludes, &a.Schedule,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Category = domain.ActivityCategory(category)
	a.Type = domain.UnitType(unit)
	a.Pricing = domain.UnitPrices{
		Adult:  domain.Money(priceAdult),
		Child:  domain.Money(priceChild),
		Infant: domain.Money(priceInfant),
	}
	if depAdult.Valid {
		a.Deposit = &domain.DepositSchedule{
			Adult:  domain.Money(depAdult.Int64),
			Child:  domain.Money(depChild.Int64),
			Infant: moneyFromNull(depInfant),
		}
	}
	a.AdultsOnly = intToBool(adultsOnly)

	if a.Requirements, err = jsonToStringList("requirements", requirements); err != nil {
		return nil, err
	}
	if a.Includes, err = jsonToStringList("includes", includes); err != nil {
		return nil, err
	}
	if a.Excludes, err = jsonToStringList("excludes", excludes); err != nil {
		return nil, err
	}
	return &a, nil
}
