package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ErrNotFound is wrapped by Get methods when no row matches.
var ErrNotFound = errors.New("not found")

type AccommodationRepo interface {
	Upsert(ctx context.Context, a *domain.Accommodation, importID string) error
	GetByID(ctx context.Context, id string) (*domain.Accommodation, error)
	List(ctx context.Context) ([]*domain.Accommodation, error)
	Count(ctx context.Context) (int, error)
}

type ActivityRepo interface {
	Upsert(ctx context.Context, a *domain.Activity, importID string) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	ListByCategory(ctx context.Context, c domain.ActivityCategory) ([]*domain.Activity, error)
	Count(ctx context.Context) (int, error)
}

type CatalogImportRepo interface {
	Create(ctx context.Context, imp *domain.CatalogImport) error
	Latest(ctx context.Context) (*domain.CatalogImport, error)
	List(ctx context.Context) ([]*domain.CatalogImport, error)
}
