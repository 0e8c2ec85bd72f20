package catalog

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ValidateCatalogSchema checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error
	errs = append(errs, validateAccommodations(schema.Accommodations)...)
	errs = append(errs, validateActivities(schema.Activities)...)
	return errs
}

func validateAccommodations(accs []AccommodationImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, a := range accs {
		prefix := fmt.Sprintf("accommodations[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
		}
		seen[a.ID] = true

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.Location == "" {
			errs = append(errs, fmt.Errorf("%s.location is required", prefix))
		}
	}

	return errs
}

func validateActivities(acts []ActivityImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, a := range acts {
		prefix := fmt.Sprintf("activities[%d]", i)
		if a.ID != "" {
			prefix = fmt.Sprintf("activities[%s]", a.ID)
		}

		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
		}
		seen[a.ID] = true

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if _, err := domain.ParseCategory(a.Category); err != nil {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, a.Category))
		}
		if _, err := domain.ParseUnitType(a.Type); err != nil {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, a.Type))
		}

		errs = append(errs, validatePricing(prefix, a.Pricing, a.Deposit)...)

		if a.MinAdults < 0 {
			errs = append(errs, fmt.Errorf("%s.min_adults must not be negative", prefix))
		}
		if a.MaxCapacity < 1 {
			errs = append(errs, fmt.Errorf("%s.max_capacity must be positive", prefix))
		} else if a.MinAdults > a.MaxCapacity {
			errs = append(errs, fmt.Errorf("%s: min_adults (%d) must be <= max_capacity (%d)",
				prefix, a.MinAdults, a.MaxCapacity))
		}
	}

	return errs
}

func validatePricing(prefix string, p PricingImport, d *DepositImport) []error {
	var errs []error

	if p.Adult < 0 || p.Child < 0 || p.Infant < 0 {
		errs = append(errs, fmt.Errorf("%s.pricing: amounts must not be negative", prefix))
	}
	if d == nil {
		return errs
	}

	infant := 0.0
	if d.Infant != nil {
		infant = *d.Infant
	}
	if d.Adult < 0 || d.Child < 0 || infant < 0 {
		errs = append(errs, fmt.Errorf("%s.deposit: amounts must not be negative", prefix))
	}
	if d.Adult > p.Adult {
		errs = append(errs, fmt.Errorf("%s.deposit.adu (%.2f) exceeds pricing.adu (%.2f)", prefix, d.Adult, p.Adult))
	}
	if d.Child > p.Child {
		errs = append(errs, fmt.Errorf("%s.deposit.chd (%.2f) exceeds pricing.chd (%.2f)", prefix, d.Child, p.Child))
	}
	if infant > p.Infant {
		errs = append(errs, fmt.Errorf("%s.deposit.inf (%.2f) exceeds pricing.inf (%.2f)", prefix, infant, p.Infant))
	}

	return errs
}
