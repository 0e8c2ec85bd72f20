package contract

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

const maxChildAge = 17

// PartyRequest carries the raw traveler counts as entered. ChildAges may
// list more ages than Children; the extras are ignored.
type PartyRequest struct {
	Adults     int   `json:"adults" validate:"gte=0,lte=50"`
	Children   int   `json:"children" validate:"gte=0,lte=20"`
	ChildAges  []int `json:"child_ages"`
	HasSeniors bool  `json:"has_seniors"`
}

// Party converts the request into the domain head-count form.
func (p PartyRequest) Party() domain.Party {
	return domain.Party{
		Adults:     p.Adults,
		Children:   p.Children,
		ChildAges:  p.ChildAges,
		HasSeniors: p.HasSeniors,
	}
}

// validate checks the ages of the declared children, then the head counts.
func (p PartyRequest) validate() error {
	n := max(min(p.Children, len(p.ChildAges)), 0)
	for i, age := range p.ChildAges[:n] {
		if age < 0 {
			return fmt.Errorf("invalid request: Party.ChildAges[%d] must be at least 0", i)
		}
		if age > maxChildAge {
			return fmt.Errorf("invalid request: Party.ChildAges[%d] must be at most %d", i, maxChildAge)
		}
	}
	return p.Party().Validate()
}
