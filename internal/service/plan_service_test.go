package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bahia = time.FixedZone("BRT", -3*60*60)

// seededServices returns plan and quote services over a store holding the
// embedded catalog.
func seededServices(t *testing.T) (PlanService, QuoteService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	_, err := newCatalogService(t, database, testutil.NewTestUoW(database)).EnsureDefault(context.Background())
	require.NoError(t, err)

	accs := repository.NewSQLiteAccommodationRepo(database)
	acts := repository.NewSQLiteActivityRepo(database)

	plan := NewPlanService(accs, acts, bahia)
	plan.(*planService).clock = func() time.Time {
		return time.Date(2025, 1, 9, 17, 30, 0, 0, time.UTC)
	}
	return plan, NewQuoteService(acts)
}

func basePlanRequest() contract.PlanRequest {
	return contract.PlanRequest{
		Arrival:         "2025-01-10",
		Departure:       "2025-01-13",
		AccommodationID: "arraial_pousada",
		Party:           contract.PartyRequest{Adults: 2},
	}
}

func TestPlanService_AssemblesItinerary(t *testing.T) {
	plan, _ := seededServices(t)

	req := basePlanRequest()
	req.Days = []contract.DaySelection{
		{Day: 1, ActivityIDs: []string{"transfer_aeroporto", "centro_historico_noite"}},
		{Day: 3, ActivityIDs: []string{"recife_fora"}},
	}
	resp, err := plan.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Rejected)

	it := resp.Itinerary
	require.Len(t, it.Days, 3)
	assert.Len(t, it.Days[0].Activities, 2)
	assert.True(t, it.Days[1].IsFree())
	assert.Equal(t, "Pousada Arraial d'Ajuda", it.Accommodation.Name)

	// 2 × (60 + 70) on day 1, 2 × 120 on day 3
	assert.Equal(t, domain.Money(26000), it.Days[0].Pricing.Total)
	assert.Equal(t, domain.Money(50000), it.TotalPricing.Total)
	require.NotNil(t, it.TotalPricing.Deposit)
	assert.Equal(t, domain.Money(8000), *it.TotalPricing.Deposit)

	assert.Equal(t, bahia, it.Days[0].Date.Location())
	assert.Contains(t, it.GeneratedText, "Roteiro gerado em 09/01/2025 14:30", "clock is rendered in the trip zone")
}

func TestPlanService_ReportsRejectedSelections(t *testing.T) {
	plan, _ := seededServices(t)

	req := basePlanRequest()
	req.Party = contract.PartyRequest{Adults: 2, Children: 1, ChildAges: []int{7}}
	req.Days = []contract.DaySelection{
		{Day: 1, ActivityIDs: []string{"trancoso_dia", "caraiva_expedicao", "quadriciclo_praia"}},
		{Day: 2, ActivityIDs: []string{"nao_existe", "recife_fora", "recife_fora"}},
		{Day: 9, ActivityIDs: []string{"transfer_aeroporto"}},
	}
	resp, err := plan.Plan(context.Background(), req)
	require.NoError(t, err)

	reasons := make(map[string]string)
	for _, r := range resp.Rejected {
		reasons[r.ActivityID+"@"+string(rune('0'+r.Day))] = r.Reason
	}
	assert.Equal(t, planner.ErrFullDayConflict.Error(), reasons["caraiva_expedicao@1"])
	assert.Equal(t, "Apenas adultos podem participar desta atividade", reasons["quadriciclo_praia@1"])
	assert.Equal(t, "atividade não encontrada", reasons["nao_existe@2"])
	assert.Equal(t, "atividade já selecionada neste dia", reasons["recife_fora@2"])
	assert.Equal(t, "dia fora do período da viagem", reasons["transfer_aeroporto@9"])
	assert.Len(t, resp.Rejected, 5)

	assert.Equal(t, 2, resp.Itinerary.ActivityCount())
}

func TestPlanService_InvalidRequests(t *testing.T) {
	plan, _ := seededServices(t)
	ctx := context.Background()

	req := basePlanRequest()
	req.Departure = "2025-01-01"
	_, err := plan.Plan(ctx, req)
	assert.ErrorContains(t, err, "before arrival")

	req = basePlanRequest()
	req.AccommodationID = "hotel_fantasma"
	_, err = plan.Plan(ctx, req)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	req = basePlanRequest()
	req.Arrival = ""
	_, err = plan.Plan(ctx, req)
	assert.ErrorContains(t, err, "Arrival is required")
}

func TestQuoteService_Quote(t *testing.T) {
	_, quote := seededServices(t)
	ctx := context.Background()

	resp, err := quote.Quote(ctx, contract.QuoteRequest{
		ActivityID: "trancoso_dia",
		Party:      contract.PartyRequest{Adults: 2, Children: 2, ChildAges: []int{6, 1}, HasSeniors: true},
	})
	require.NoError(t, err)

	// 2 seniors billed as adults at 160, one child at 80, one infant free
	assert.Equal(t, domain.Money(40000), resp.Pricing.Total)
	assert.Equal(t, domain.Money(0), resp.Pricing.Seniors)
	require.NotNil(t, resp.Pricing.Deposit)
	assert.Equal(t, domain.Money(12500), *resp.Pricing.Deposit)
	assert.True(t, resp.Validation.Valid)
	assert.Equal(t, domain.RosterCounts{Seniors: 2, Children: 1, Infants: 1}, resp.Roster.Counts())
}

func TestQuoteService_IneligibleStillPriced(t *testing.T) {
	_, quote := seededServices(t)

	resp, err := quote.Quote(context.Background(), contract.QuoteRequest{
		ActivityID: "quadriciclo_praia",
		Party:      contract.PartyRequest{Adults: 1, Children: 1, ChildAges: []int{10}},
	})
	require.NoError(t, err)
	assert.False(t, resp.Validation.Valid)
	assert.Equal(t, domain.Money(35000), resp.Pricing.Total)
}

func TestQuoteService_UnknownActivity(t *testing.T) {
	_, quote := seededServices(t)
	_, err := quote.Quote(context.Background(), contract.QuoteRequest{ActivityID: "x", Party: contract.PartyRequest{Adults: 1}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuoteService_ObserverRecordsQuote(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := newCatalogService(t, database, testutil.NewTestUoW(database)).EnsureDefault(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	quote := NewQuoteService(repository.NewSQLiteActivityRepo(database), NewLogUseCaseObserver(&buf))

	_, err = quote.Quote(context.Background(), contract.QuoteRequest{
		ActivityID: "quadriciclo_praia",
		Party:      contract.PartyRequest{Adults: 1, Children: 1, ChildAges: []int{10}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "use_case=quote-activity")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "activity=quadriciclo_praia")
	assert.Contains(t, out, "eligible=false")
	assert.Contains(t, out, "travelers=2")

	buf.Reset()
	_, err = quote.Quote(context.Background(), contract.QuoteRequest{ActivityID: "nao_existe", Party: contract.PartyRequest{Adults: 1}})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "success=false")
}

func TestQuoteService_ExtraChildAgesIgnored(t *testing.T) {
	_, quote := seededServices(t)

	resp, err := quote.Quote(context.Background(), contract.QuoteRequest{
		ActivityID: "recife_fora",
		Party:      contract.PartyRequest{Adults: 2, Children: 1, ChildAges: []int{5, 30}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RosterCounts{Adults: 2, Children: 1}, resp.Roster.Counts())
}
