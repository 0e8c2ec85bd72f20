package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory DB seeded with the embedded
// catalog.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	accRepo := repository.NewSQLiteAccommodationRepo(db)
	actRepo := repository.NewSQLiteActivityRepo(db)
	impRepo := repository.NewSQLiteCatalogImportRepo(db)

	catalogSvc := service.NewCatalogService(accRepo, actRepo, impRepo, testutil.NewTestUoW(db))
	_, err := catalogSvc.EnsureDefault(context.Background())
	require.NoError(t, err)

	return &App{
		Catalog:       catalogSvc,
		Quotes:        service.NewQuoteService(actRepo),
		Plans:         service.NewPlanService(accRepo, actRepo, nil),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCatalogActivities_FiltersByCategory(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "catalog", "activities", "--category", "transfers")
	require.NoError(t, err)
	assert.Contains(t, out, "transfer_aeroporto")
	assert.Contains(t, out, "transfer_trancoso")
	assert.NotContains(t, out, "recife_fora")

	_, _, err = executeCmd(t, app, "catalog", "activities", "--category", "mergulho")
	assert.ErrorContains(t, err, "unknown activity category")
}

func TestCatalogAccommodations(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "catalog", "accommodations")
	require.NoError(t, err)
	assert.Contains(t, out, "HOSPEDAGENS")
	assert.Contains(t, out, "trancoso_resort")
}

func TestCatalogShow(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "catalog", "show", "quadriciclo_praia")
	require.NoError(t, err)
	assert.Contains(t, out, "somente adultos")

	out, _, err = executeCmd(t, app, "catalog", "show", "caraiva_eco")
	require.NoError(t, err)
	assert.Contains(t, out, "Caraíva")

	_, _, err = executeCmd(t, app, "catalog", "show", "nada")
	assert.ErrorContains(t, err, `nothing in the catalog with id "nada"`)
}

func TestCatalogImport(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"accommodations": [],
		"activities": [{
			"id": "mergulho_recife", "name": "Mergulho no Recife", "category": "maritimos",
			"type": "half_day", "duration": "3 horas", "pricing": {"adu": 200, "chd": 100, "inf": 0},
			"min_adults": 1, "max_capacity": 8, "description": "Batismo de mergulho"
		}]
	}`), 0644))

	out, _, err := executeCmd(t, app, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 hospedagens e 1 atividade importadas")

	out, _, err = executeCmd(t, app, "catalog", "show", "mergulho_recife")
	require.NoError(t, err)
	assert.Contains(t, out, "Batismo de mergulho")
}

func TestQuote(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "quote", "recife_fora", "--adults", "2", "--ages", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "2 ADU + 1 CHD (7 anos)")
	assert.Contains(t, out, "Total: R$\u00a0300,00")
	assert.Contains(t, out, "Disponível para o grupo")

	out, _, err = executeCmd(t, app, "quote", "quadriciclo_praia", "--adults", "1", "--ages", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Indisponível para o grupo")
	assert.Contains(t, out, "Apenas adultos")
}

func TestQuote_InvalidParty(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "quote", "recife_fora", "--children", "2", "--ages", "7")
	assert.ErrorContains(t, err, "2 children declared but only 1 ages given")
}

func TestPlan_FromFlags(t *testing.T) {
	app := testApp(t)

	out, errOut, err := executeCmd(t, app, "plan",
		"--arrival", "2025-01-10", "--departure", "2025-01-12",
		"--stay", "arraial_pousada", "--adults", "2",
		"--day", "1=recife_fora,centro_historico_noite",
		"--day", "2=nao_existe")
	require.NoError(t, err)

	assert.Contains(t, out, "ROTEIRO RESUMIDO")
	assert.Contains(t, out, "🎯 Passeio Recife de Fora")
	assert.Contains(t, out, "• Dia livre")
	assert.Contains(t, errOut, "nao_existe")
	assert.Contains(t, errOut, "atividade não encontrada")
}

func TestPlan_View(t *testing.T) {
	out, errOut, err := executeCmd(t, testApp(t), "plan", "--view",
		"--arrival", "2025-01-10", "--departure", "2025-01-11",
		"--stay", "arraial_pousada", "--day", "1=transfer_aeroporto")
	require.NoError(t, err)
	assert.Contains(t, out, "ROTEIRO")
	assert.Contains(t, out, "sex 10/01")
	assert.Contains(t, out, "Transfer Aeroporto")
	assert.Empty(t, errOut)
}

func TestPlan_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"arrival": "2025-01-10",
		"departure": "2025-01-12",
		"accommodation_id": "trancoso_resort",
		"party": {"adults": 2, "children": 1, "child_ages": [1]},
		"days": [{"day": 2, "activity_ids": ["trancoso_dia"]}]
	}`), 0644))

	out, _, err := executeCmd(t, testApp(t), "plan", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Trancoso Resort")
	assert.Contains(t, out, "2 ADU + 1 INF")
	assert.Contains(t, out, "🎯 Trancoso")
}

func TestPlan_Errors(t *testing.T) {
	app := testApp(t)

	_, _, err := executeCmd(t, app, "plan", "--arrival", "2025-01-10", "--departure", "2025-01-12")
	assert.ErrorContains(t, err, "AccommodationID is required")

	_, _, err = executeCmd(t, app, "plan", "--interactive")
	assert.ErrorContains(t, err, "needs a terminal")

	_, _, err = executeCmd(t, app, "plan", "--day", "x=recife_fora")
	assert.ErrorContains(t, err, "invalid day")
}
