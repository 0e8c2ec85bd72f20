package contract

import (
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/pricing"
)

// QuoteRequest asks for the price of one activity for a party.
type QuoteRequest struct {
	ActivityID string       `json:"activity_id" validate:"required"`
	Party      PartyRequest `json:"party"`
}

func (r QuoteRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.Party.validate()
}

// QuoteResponse is the price and eligibility of one activity. Pricing is
// computed even when the booking is not eligible.
type QuoteResponse struct {
	Activity   domain.Activity
	Roster     domain.Roster
	Pricing    pricing.Breakdown
	Validation pricing.Validation
}
