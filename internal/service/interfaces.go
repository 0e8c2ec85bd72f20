package service

import (
	"context"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
)

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	Import *domain.CatalogImport
}

type CatalogService interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, source string, schema *catalog.CatalogSchema) (*ImportResult, error)
	// EnsureDefault imports the embedded catalog when the store holds no
	// activities. It returns a nil result when nothing was imported.
	EnsureDefault(ctx context.Context) (*ImportResult, error)
	ListAccommodations(ctx context.Context) ([]*domain.Accommodation, error)
	ListActivities(ctx context.Context, category *domain.ActivityCategory) ([]*domain.Activity, error)
	GetAccommodation(ctx context.Context, id string) (*domain.Accommodation, error)
	GetActivity(ctx context.Context, id string) (*domain.Activity, error)
	LatestImport(ctx context.Context) (*domain.CatalogImport, error)
}

type QuoteService interface {
	Quote(ctx context.Context, req contract.QuoteRequest) (*contract.QuoteResponse, error)
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}
