package domain

import "fmt"

// MaxSeniors caps how many adults the senior flag reclassifies. The flag is
// a single checkbox, so larger senior groups are still billed and shown as
// two seniors plus regular adults.
const MaxSeniors = 2

// InfantAgeLimit is the first age that is no longer an infant.
const InfantAgeLimit = 2

type Traveler struct {
	Type TravelerType
	Age  *int
}

// BillsAsAdult reports whether the traveler is charged the adult rate.
func (t Traveler) BillsAsAdult() bool {
	return t.Type == TravelerAdult || t.Type == TravelerSenior
}

// Roster is the classified list of travelers for one trip.
type Roster []Traveler

// RosterCounts tallies a roster per traveler type.
type RosterCounts struct {
	Adults   int
	Seniors  int
	Children int
	Infants  int
}

// BillableAdults counts adults and seniors together, as pricing and the
// minimum-adults rule do.
func (c RosterCounts) BillableAdults() int {
	return c.Adults + c.Seniors
}

func (r Roster) Counts() RosterCounts {
	var c RosterCounts
	for _, t := range r {
		switch t.Type {
		case TravelerAdult:
			c.Adults++
		case TravelerSenior:
			c.Seniors++
		case TravelerChild:
			c.Children++
		case TravelerInfant:
			c.Infants++
		}
	}
	return c
}

// HasMinors reports whether any child or infant is on the roster.
func (r Roster) HasMinors() bool {
	for _, t := range r {
		if t.Type == TravelerChild || t.Type == TravelerInfant {
			return true
		}
	}
	return false
}

// AgesOf returns the ages of every traveler of the given type, in roster order.
func (r Roster) AgesOf(tt TravelerType) []int {
	var ages []int
	for _, t := range r {
		if t.Type == tt && t.Age != nil {
			ages = append(ages, *t.Age)
		}
	}
	return ages
}

// ClassifyParticipants turns raw head counts into a roster: plain adults
// first, then seniors, then one entry per declared child. Ages past the
// declared child count are ignored; age alone decides child versus infant.
func ClassifyParticipants(adults, children int, childAges []int, hasSeniors bool) Roster {
	seniors := 0
	if hasSeniors {
		seniors = min(adults, MaxSeniors)
	}

	roster := make(Roster, 0, max(adults, 0)+max(children, 0))
	for i := 0; i < adults-seniors; i++ {
		roster = append(roster, Traveler{Type: TravelerAdult})
	}
	for i := 0; i < seniors; i++ {
		roster = append(roster, Traveler{Type: TravelerSenior})
	}

	if children > len(childAges) {
		children = len(childAges)
	}
	for _, age := range childAges[:max(children, 0)] {
		tt := TravelerChild
		if age < InfantAgeLimit {
			tt = TravelerInfant
		}
		roster = append(roster, Traveler{Type: tt, Age: &age})
	}
	return roster
}

// Party is the raw head-count input collected from the traveler form.
type Party struct {
	Adults     int
	Children   int
	ChildAges  []int
	HasSeniors bool
}

// Validate rejects counts the classifier cannot turn into a sensible roster.
func (p Party) Validate() error {
	if p.Adults < 0 {
		return fmt.Errorf("adults must not be negative (got %d)", p.Adults)
	}
	if p.Children < 0 {
		return fmt.Errorf("children must not be negative (got %d)", p.Children)
	}
	if len(p.ChildAges) < p.Children {
		return fmt.Errorf("%d children declared but only %d ages given", p.Children, len(p.ChildAges))
	}
	for i, age := range p.ChildAges[:p.Children] {
		if age < 0 {
			return fmt.Errorf("age of child %d must not be negative (got %d)", i+1, age)
		}
	}
	return nil
}

// Roster classifies the party.
func (p Party) Roster() Roster {
	return ClassifyParticipants(p.Adults, p.Children, p.ChildAges, p.HasSeniors)
}

// Size is the number of travelers the party declares.
func (p Party) Size() int {
	return p.Adults + p.Children
}
