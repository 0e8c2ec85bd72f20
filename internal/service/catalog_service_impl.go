package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/google/uuid"
)

type catalogService struct {
	accommodations repository.AccommodationRepo
	activities     repository.ActivityRepo
	imports        repository.CatalogImportRepo
	uow            db.UnitOfWork
	observer       UseCaseObserver
}

func NewCatalogService(
	accommodations repository.AccommodationRepo,
	activities repository.ActivityRepo,
	imports repository.CatalogImportRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		accommodations: accommodations,
		activities:     activities,
		imports:        imports,
		uow:            uow,
		observer:       useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := catalog.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportSchema(ctx, filePath, schema)
}

func (s *catalogService) ImportSchema(ctx context.Context, source string, schema *catalog.CatalogSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": source}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-catalog",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := catalog.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, catalog.FormatValidationErrors(errs)
	}

	var cat *catalog.Catalog
	cat, err = catalog.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting catalog: %w", err)
	}
	fields["accommodation_count"] = len(cat.Accommodations)
	fields["activity_count"] = len(cat.Activities)

	imp := &domain.CatalogImport{
		ID:                 uuid.New().String(),
		Source:             source,
		AccommodationCount: len(cat.Accommodations),
		ActivityCount:      len(cat.Activities),
		ImportedAt:         startedAt,
	}

	// Persist the batch atomically
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txImports := repository.NewSQLiteCatalogImportRepo(tx)
		txAccommodations := repository.NewSQLiteAccommodationRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)

		if err := txImports.Create(ctx, imp); err != nil {
			return fmt.Errorf("recording import: %w", err)
		}
		for i := range cat.Accommodations {
			if err := txAccommodations.Upsert(ctx, &cat.Accommodations[i], imp.ID); err != nil {
				return err
			}
		}
		for i := range cat.Activities {
			if err := txActivities.Upsert(ctx, &cat.Activities[i], imp.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Import: imp}, nil
}

func (s *catalogService) EnsureDefault(ctx context.Context) (*ImportResult, error) {
	n, err := s.activities.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, nil
	}

	schema, err := catalog.DefaultSchema()
	if err != nil {
		return nil, err
	}
	return s.ImportSchema(ctx, catalog.DefaultSource, schema)
}

func (s *catalogService) ListAccommodations(ctx context.Context) ([]*domain.Accommodation, error) {
	return s.accommodations.List(ctx)
}

func (s *catalogService) ListActivities(ctx context.Context, category *domain.ActivityCategory) ([]*domain.Activity, error) {
	if category != nil {
		return s.activities.ListByCategory(ctx, *category)
	}
	return s.activities.List(ctx)
}

func (s *catalogService) GetAccommodation(ctx context.Context, id string) (*domain.Accommodation, error) {
	return s.accommodations.GetByID(ctx, id)
}

func (s *catalogService) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *catalogService) LatestImport(ctx context.Context) (*domain.CatalogImport, error) {
	return s.imports.Latest(ctx)
}
