package pricing

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPriceActivity_Invariants property-tests the breakdown invariants over
// random rosters and price tables: subtotals sum to the total, seniors are
// never billed separately and remaining is total minus deposit.
func TestPriceActivity_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		a := domain.Activity{
			ID:   "prop",
			Type: domain.UnitHalfDay,
			Pricing: domain.UnitPrices{
				Adult:  domain.Money(rng.Intn(50000)),
				Child:  domain.Money(rng.Intn(30000)),
				Infant: domain.Money(rng.Intn(3) * 1000),
			},
			MaxCapacity: 20,
		}
		if rng.Intn(2) == 1 {
			a.Deposit = &domain.DepositSchedule{
				Adult: domain.Money(rng.Intn(int(a.Pricing.Adult) + 1)),
				Child: domain.Money(rng.Intn(int(a.Pricing.Child) + 1)),
			}
		}

		children := rng.Intn(4)
		ages := make([]int, children)
		for i := range ages {
			ages[i] = rng.Intn(14)
		}
		roster := domain.ClassifyParticipants(rng.Intn(6), children, ages, rng.Intn(2) == 1)

		b := PriceActivity(a, roster)
		require.NoError(t, b.Validate(), "trial %d", trial)
		assert.Zero(t, b.Seniors)
		if b.Deposit == nil {
			assert.Nil(t, b.Remaining)
			continue
		}
		require.NotNil(t, b.Remaining)
		assert.Equal(t, b.Total-*b.Deposit, *b.Remaining, "trial %d", trial)
		assert.GreaterOrEqual(t, int64(*b.Remaining), int64(0))
	}
}

// TestFold_Invariants checks that folding keeps subtotals consistent and is
// order independent.
func TestFold_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		roster := domain.ClassifyParticipants(rng.Intn(4)+1, 1, []int{rng.Intn(10)}, false)
		parts := make([]Breakdown, rng.Intn(5))
		for i := range parts {
			a := domain.Activity{
				Pricing: domain.UnitPrices{Adult: domain.Money(rng.Intn(20000)), Child: domain.Money(rng.Intn(10000))},
			}
			if rng.Intn(2) == 1 {
				a.Deposit = &domain.DepositSchedule{Adult: domain.Money(rng.Intn(int(a.Pricing.Adult) + 1))}
			}
			parts[i] = PriceActivity(a, roster)
		}

		folded := Fold(parts...)
		require.NoError(t, folded.Validate(), "trial %d", trial)

		reversed := make([]Breakdown, len(parts))
		for i, p := range parts {
			reversed[len(parts)-1-i] = p
		}
		assert.Equal(t, folded, Fold(reversed...), "trial %d", trial)
	}
}
