package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogSchema is the top-level JSON structure for a catalog file.
type CatalogSchema struct {
	Accommodations []AccommodationImport `json:"accommodations"`
	Activities     []ActivityImport      `json:"activities"`
}

// AccommodationImport defines a lodging entry in the catalog file.
type AccommodationImport struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type,omitempty"`
}

// ActivityImport defines a bookable activity in the catalog file. Amounts
// are decimal reais.
type ActivityImport struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Type         string         `json:"type"`
	Duration     string         `json:"duration"`
	Pricing      PricingImport  `json:"pricing"`
	Deposit      *DepositImport `json:"deposit,omitempty"`
	MinAdults    int            `json:"min_adults"`
	MaxCapacity  int            `json:"max_capacity"`
	AdultsOnly   bool           `json:"adults_only,omitempty"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements,omitempty"`
	Schedule     string         `json:"schedule,omitempty"`
	Includes     []string       `json:"includes,omitempty"`
	Excludes     []string       `json:"excludes,omitempty"`
}

// PricingImport is the per-person price by billing category.
type PricingImport struct {
	Adult  float64 `json:"adu"`
	Child  float64 `json:"chd"`
	Infant float64 `json:"inf"`
}

// DepositImport is the per-person pre-booking amount. inf may be omitted.
type DepositImport struct {
	Adult  float64  `json:"adu"`
	Child  float64  `json:"chd"`
	Infant *float64 `json:"inf,omitempty"`
}

// LoadCatalogSchema reads and parses a catalog JSON file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogSchema(data)
}

// ParseCatalogSchema parses catalog JSON held in memory.
func ParseCatalogSchema(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
