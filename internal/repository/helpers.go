package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

// nullableMoneyToValue converts an optional amount to a value suitable for
// SQLite storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableMoneyToValue(m *domain.Money) any {
	if m == nil {
		return nil
	}
	return int64(*m)
}

// moneyFromNull converts a nullable cents column back to an optional amount.
func moneyFromNull(v sql.NullInt64) *domain.Money {
	if !v.Valid {
		return nil
	}
	return domain.MoneyPtr(domain.Money(v.Int64))
}

// nullableString stores an empty string as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringListToJSON encodes a list column. nil is stored as an empty array.
func stringListToJSON(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// jsonToStringList decodes a list column. An empty array decodes to nil.
func jsonToStringList(column, s string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", column, err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
