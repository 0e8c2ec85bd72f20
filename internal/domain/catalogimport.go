package domain

import "time"

// CatalogImport records one catalog load into the local store.
type CatalogImport struct {
	ID                 string
	Source             string
	AccommodationCount int
	ActivityCount      int
	ImportedAt         time.Time
}
