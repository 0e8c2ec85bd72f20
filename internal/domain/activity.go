package domain

// UnitPrices holds the per-person price of an activity for each billing
// category. Seniors pay the adult price.
type UnitPrices struct {
	Adult  Money
	Child  Money
	Infant Money
}

// DepositSchedule is the per-person pre-booking amount. Infant is optional
// and counts as zero when unset.
type DepositSchedule struct {
	Adult  Money
	Child  Money
	Infant *Money
}

// InfantOrZero returns the infant deposit, defaulting to zero.
func (d DepositSchedule) InfantOrZero() Money {
	if d.Infant == nil {
		return 0
	}
	return *d.Infant
}

// Activity is read-only catalog data; nothing in the core mutates it.
type Activity struct {
	ID           string
	Name         string
	Category     ActivityCategory
	Type         UnitType
	Duration     string
	Pricing      UnitPrices
	Deposit      *DepositSchedule
	MinAdults    int
	MaxCapacity  int
	AdultsOnly   bool
	Description  string
	Requirements []string
	Includes     []string
	Excludes     []string
	Schedule     string
}

// IsFullDay reports whether the activity occupies a whole day.
func (a Activity) IsFullDay() bool {
	return a.Type == UnitFullDay
}

type Accommodation struct {
	ID       string
	Name     string
	Location string
	Type     string
}
