package pricing

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Breakdown is the category-split price of one activity, one day or a
// whole trip. Deposit and Remaining are nil when no deposit applies.
type Breakdown struct {
	Adults    domain.Money
	Children  domain.Money
	Infants   domain.Money
	Seniors   domain.Money
	Total     domain.Money
	Deposit   *domain.Money
	Remaining *domain.Money
}

// HasDeposit reports whether a pre-booking amount applies.
func (b Breakdown) HasDeposit() bool {
	return b.Deposit != nil
}

// Validate checks the structural invariants of a breakdown: subtotals sum
// to the total, seniors are never billed separately and deposit/remaining
// are present together.
func (b Breakdown) Validate() error {
	if sum := b.Adults + b.Children + b.Infants + b.Seniors; sum != b.Total {
		return fmt.Errorf("subtotals sum to %s but total is %s", sum, b.Total)
	}
	if b.Seniors != 0 {
		return fmt.Errorf("senior subtotal must be zero, got %s", b.Seniors)
	}
	if (b.Deposit == nil) != (b.Remaining == nil) {
		return fmt.Errorf("deposit and remaining must be present together")
	}
	if b.Deposit != nil && *b.Deposit == 0 {
		return fmt.Errorf("zero deposit must be omitted")
	}
	return nil
}

// PriceActivity computes the price of one activity for a roster. Seniors
// are billed at the adult rate. A deposit is reported only when the
// activity declares a schedule and the computed amount is nonzero; in that
// case Remaining is Total minus Deposit.
func PriceActivity(a domain.Activity, roster domain.Roster) Breakdown {
	c := roster.Counts()
	adults := c.BillableAdults()

	b := Breakdown{
		Adults:   a.Pricing.Adult.Times(adults),
		Children: a.Pricing.Child.Times(c.Children),
		Infants:  a.Pricing.Infant.Times(c.Infants),
	}
	b.Total = b.Adults + b.Children + b.Infants

	if a.Deposit != nil {
		deposit := a.Deposit.Adult.Times(adults) +
			a.Deposit.Child.Times(c.Children) +
			a.Deposit.InfantOrZero().Times(c.Infants)
		if deposit != 0 {
			b.Deposit = domain.MoneyPtr(deposit)
			b.Remaining = domain.MoneyPtr(b.Total - deposit)
		}
	}
	return b
}

// Fold sums breakdowns category by category. Deposit and remaining are
// summed only over the parts that carry them, and are omitted again when
// the folded deposit is zero.
func Fold(parts ...Breakdown) Breakdown {
	var out Breakdown
	var deposit, remaining domain.Money
	for _, p := range parts {
		out.Adults += p.Adults
		out.Children += p.Children
		out.Infants += p.Infants
		out.Seniors += p.Seniors
		out.Total += p.Total
		if p.Deposit != nil {
			deposit += *p.Deposit
		}
		if p.Remaining != nil {
			remaining += *p.Remaining
		}
	}
	if deposit != 0 {
		out.Deposit = domain.MoneyPtr(deposit)
		out.Remaining = domain.MoneyPtr(remaining)
	}
	return out
}
