package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T, database *sql.DB, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	t.Helper()
	return NewCatalogService(
		repository.NewSQLiteAccommodationRepo(database),
		repository.NewSQLiteActivityRepo(database),
		repository.NewSQLiteCatalogImportRepo(database),
		uow,
		observers...,
	)
}

func smallCatalogSchema() *catalog.CatalogSchema {
	return &catalog.CatalogSchema{
		Accommodations: []catalog.AccommodationImport{
			{ID: "arraial_pousada", Name: "Pousada Arraial d'Ajuda", Location: "Arraial d'Ajuda", Type: "pousada"},
		},
		Activities: []catalog.ActivityImport{
			{ID: "recife_fora", Name: "Passeio Recife de Fora", Category: "maritimos", Type: "half_day",
				Pricing: catalog.PricingImport{Adult: 120, Child: 60}, MinAdults: 1, MaxCapacity: 40},
			{ID: "transfer_aeroporto", Name: "Transfer Aeroporto", Category: "transfers", Type: "transfer",
				Pricing: catalog.PricingImport{Adult: 60, Child: 30}, MinAdults: 1, MaxCapacity: 15},
		},
	}
}

func TestCatalogService_ImportSchema_PersistsBatch(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, database, testutil.NewTestUoW(database))
	ctx := context.Background()

	res, err := svc.ImportSchema(ctx, "catalog.json", smallCatalogSchema())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Import.ID)
	assert.Equal(t, 1, res.Import.AccommodationCount)
	assert.Equal(t, 2, res.Import.ActivityCount)

	acts, err := svc.ListActivities(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, acts, 2)

	latest, err := svc.LatestImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Import.ID, latest.ID)
	assert.Equal(t, "catalog.json", latest.Source)
}

func TestCatalogService_ImportSchema_ValidationErrors(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, database, testutil.NewTestUoW(database))

	schema := smallCatalogSchema()
	schema.Activities[0].Category = "mergulho"
	schema.Activities[1].MaxCapacity = 0

	_, err := svc.ImportSchema(context.Background(), "bad.json", schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed (2 errors)")

	_, err = svc.LatestImport(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_ImportSchema_RollbackOnActivityFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// Exec calls: #1 = import record, #2 = accommodation, #3 = first activity, #4 = second activity
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 4,
		Err:    fmt.Errorf("injected activity upsert failure"),
	}
	svc := newCatalogService(t, database, failUoW)

	_, err := svc.ImportSchema(ctx, "catalog.json", smallCatalogSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected activity upsert failure")

	accs, err := svc.ListAccommodations(ctx)
	require.NoError(t, err)
	assert.Empty(t, accs, "no accommodations should exist after rollback")
	_, err = svc.LatestImport(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_Import_FromFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, database, testutil.NewTestUoW(database))

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"accommodations": [{"id": "caraiva_eco", "name": "Caraíva Eco Resort", "location": "Caraíva"}],
		"activities": []
	}`), 0644))

	res, err := svc.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, res.Import.Source)

	acc, err := svc.GetAccommodation(context.Background(), "caraiva_eco")
	require.NoError(t, err)
	assert.Equal(t, "Caraíva", acc.Location)

	_, err = svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCatalogService_EnsureDefault_SeedsOnce(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, database, testutil.NewTestUoW(database))
	ctx := context.Background()

	res, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, catalog.DefaultSource, res.Import.Source)
	assert.Equal(t, 6, res.Import.AccommodationCount)

	again, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, again, "populated store is left alone")

	quad, err := svc.GetActivity(ctx, "quadriciclo_praia")
	require.NoError(t, err)
	assert.True(t, quad.AdultsOnly)

	cat := domain.CategoryTransfers
	transfers, err := svc.ListActivities(ctx, &cat)
	require.NoError(t, err)
	for _, a := range transfers {
		assert.Equal(t, domain.CategoryTransfers, a.Category)
	}
	assert.NotEmpty(t, transfers)
}

func TestCatalogService_ObserverRecordsImport(t *testing.T) {
	database := testutil.NewTestDB(t)
	var buf bytes.Buffer
	svc := newCatalogService(t, database, testutil.NewTestUoW(database), NewLogUseCaseObserver(&buf))

	_, err := svc.ImportSchema(context.Background(), "catalog.json", smallCatalogSchema())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "use_case=import-catalog")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "activity_count=2")
	assert.Contains(t, out, "component=itinera")
}
