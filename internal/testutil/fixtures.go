package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

var testActivityCounter atomic.Int64

// Activity options
type ActivityOption func(*domain.Activity)

func WithID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ID = id
	}
}

func WithUnitType(u domain.UnitType) ActivityOption {
	return func(a *domain.Activity) {
		a.Type = u
	}
}

func WithCategory(c domain.ActivityCategory) ActivityOption {
	return func(a *domain.Activity) {
		a.Category = c
	}
}

// WithPrices sets adult, child and infant unit prices in reais.
func WithPrices(adult, child, infant float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Pricing = domain.UnitPrices{
			Adult:  domain.MoneyFromReais(adult),
			Child:  domain.MoneyFromReais(child),
			Infant: domain.MoneyFromReais(infant),
		}
	}
}

// WithDeposit sets an adult/child deposit schedule in reais, leaving the
// infant deposit unset.
func WithDeposit(adult, child float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Deposit = &domain.DepositSchedule{
			Adult: domain.MoneyFromReais(adult),
			Child: domain.MoneyFromReais(child),
		}
	}
}

func WithInfantDeposit(infant float64) ActivityOption {
	return func(a *domain.Activity) {
		if a.Deposit == nil {
			a.Deposit = &domain.DepositSchedule{}
		}
		a.Deposit.Infant = domain.MoneyPtr(domain.MoneyFromReais(infant))
	}
}

func WithMinAdults(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.MinAdults = n
	}
}

func WithMaxCapacity(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.MaxCapacity = n
	}
}

func WithAdultsOnly() ActivityOption {
	return func(a *domain.Activity) {
		a.AdultsOnly = true
	}
}

func WithSchedule(s string) ActivityOption {
	return func(a *domain.Activity) {
		a.Schedule = s
	}
}

func WithDetails(includes, excludes, requirements []string) ActivityOption {
	return func(a *domain.Activity) {
		a.Includes = includes
		a.Excludes = excludes
		a.Requirements = requirements
	}
}

// NewTestActivity returns a half-day activity priced at R$100 adult,
// R$50 child, free for infants, needing one adult and taking up to 10.
func NewTestActivity(name string, opts ...ActivityOption) domain.Activity {
	n := testActivityCounter.Add(1)
	a := domain.Activity{
		ID:          fmt.Sprintf("act_%03d", n),
		Name:        name,
		Category:    domain.CategoryExperiences,
		Type:        domain.UnitHalfDay,
		Duration:    "4 horas",
		Pricing:     domain.UnitPrices{Adult: 10000, Child: 5000},
		MinAdults:   1,
		MaxCapacity: 10,
		Description: name,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func NewTestAccommodation(name string) domain.Accommodation {
	return domain.Accommodation{
		ID:       fmt.Sprintf("acc_%d", testActivityCounter.Add(1)),
		Name:     name,
		Location: "Porto Seguro",
		Type:     "pousada",
	}
}

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewTestTripDates builds trip dates and panics on an invalid range.
func NewTestTripDates(arrival, departure time.Time) domain.TripDates {
	td, err := domain.NewTripDates(arrival, departure)
	if err != nil {
		panic(err)
	}
	return td
}
