package catalog

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Catalog is the converted, ready-to-store content of a catalog file.
type Catalog struct {
	Accommodations []domain.Accommodation
	Activities     []domain.Activity
}

// Convert transforms a validated CatalogSchema into domain objects.
// Call ValidateCatalogSchema first; Convert assumes the schema is valid.
func Convert(schema *CatalogSchema) (*Catalog, error) {
	cat := &Catalog{
		Accommodations: make([]domain.Accommodation, 0, len(schema.Accommodations)),
		Activities:     make([]domain.Activity, 0, len(schema.Activities)),
	}

	for _, a := range schema.Accommodations {
		cat.Accommodations = append(cat.Accommodations, domain.Accommodation{
			ID:       a.ID,
			Name:     a.Name,
			Location: a.Location,
			Type:     a.Type,
		})
	}

	for _, a := range schema.Activities {
		category, err := domain.ParseCategory(a.Category)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		unit, err := domain.ParseUnitType(a.Type)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}

		cat.Activities = append(cat.Activities, domain.Activity{
			ID:       a.ID,
			Name:     a.Name,
			Category: category,
			Type:     unit,
			Duration: a.Duration,
			Pricing: domain.UnitPrices{
				Adult:  domain.MoneyFromReais(a.Pricing.Adult),
				Child:  domain.MoneyFromReais(a.Pricing.Child),
				Infant: domain.MoneyFromReais(a.Pricing.Infant),
			},
			Deposit:      convertDeposit(a.Deposit),
			MinAdults:    a.MinAdults,
			MaxCapacity:  a.MaxCapacity,
			AdultsOnly:   a.AdultsOnly,
			Description:  a.Description,
			Requirements: slices.Clone(a.Requirements),
			Includes:     slices.Clone(a.Includes),
			Excludes:     slices.Clone(a.Excludes),
			Schedule:     a.Schedule,
		})
	}

	return cat, nil
}

func convertDeposit(d *DepositImport) *domain.DepositSchedule {
	if d == nil {
		return nil
	}
	out := &domain.DepositSchedule{
		Adult: domain.MoneyFromReais(d.Adult),
		Child: domain.MoneyFromReais(d.Child),
	}
	if d.Infant != nil {
		out.Infant = domain.MoneyPtr(domain.MoneyFromReais(*d.Infant))
	}
	return out
}

// FormatValidationErrors folds validation errors into a single error
// listing each one on its own line.
func FormatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
