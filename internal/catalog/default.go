package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// DefaultSource is the import source recorded for the embedded catalog.
const DefaultSource = "embedded:default_catalog.json"

// DefaultSchema parses the catalog shipped with the binary.
func DefaultSchema() (*CatalogSchema, error) {
	schema, err := ParseCatalogSchema(defaultCatalogJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return schema, nil
}
