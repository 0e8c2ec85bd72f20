package planner

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/itinerary"
	"github.com/alexanderramin/itinera/internal/pricing"
	"github.com/alexanderramin/itinera/internal/render"
)

var (
	ErrDayOutOfRange        = errors.New("day outside trip range")
	ErrDuplicateActivity    = errors.New("activity already selected for this day")
	ErrFullDayConflict      = errors.New(pricing.FullDayConflictMessage)
	ErrMissingDates         = errors.New("trip dates not set")
	ErrMissingAccommodation = errors.New("accommodation not set")
)

// BookingRejectedError carries the validator's reasons for refusing an
// activity.
type BookingRejectedError struct {
	ActivityID string
	Violations []pricing.Violation
}

func (e *BookingRejectedError) Error() string {
	msgs := pricing.Validation{Violations: e.Violations}.Messages()
	return fmt.Sprintf("activity %s cannot be booked: %v", e.ActivityID, msgs)
}

// Pruned describes a selection dropped because a dates or party change
// made it invalid.
type Pruned struct {
	Day      int
	Activity domain.Activity
	Reason   string
}

// State is the in-progress itinerary form. It is a value: every mutation
// returns a new State with Version incremented and leaves the receiver
// untouched, so callers can keep history or discard a rejected change.
type State struct {
	Version       int
	Dates         *domain.TripDates
	Accommodation *domain.Accommodation
	Party         domain.Party
	Selections    Selections
	Validator     pricing.Validator
}

// New returns an empty state with the default party of two adults.
func New() State {
	return State{
		Party:     domain.Party{Adults: 2},
		Validator: pricing.DefaultValidator,
	}
}

// Roster classifies the current party.
func (s State) Roster() domain.Roster {
	return s.Party.Roster()
}

func (s State) next() State {
	n := s
	n.Version++
	n.Selections = s.Selections.Clone()
	return n
}

// AddActivity books an activity on a day. The change is refused, and the
// receiver returned unchanged, when the day is outside the trip, the
// activity is already on that day, the day already holds a full-day
// activity and this one is full-day too, or the validator rejects the
// current roster.
func (s State) AddActivity(day int, a domain.Activity) (State, error) {
	if s.Dates == nil {
		return s, ErrMissingDates
	}
	if !s.Dates.Contains(day) {
		return s, fmt.Errorf("day %d of %d: %w", day, s.Dates.Days, ErrDayOutOfRange)
	}

	current := s.Selections.Day(day)
	if s.Selections.Has(day, a.ID) {
		return s, fmt.Errorf("%s on day %d: %w", a.ID, day, ErrDuplicateActivity)
	}
	if conflicts := pricing.CheckSchedulingConflicts(append(slices.Clone(current), a)); len(conflicts) > 0 {
		return s, fmt.Errorf("%s on day %d: %w", a.ID, day, ErrFullDayConflict)
	}
	if v := s.Validator.Validate(a, s.Roster()); !v.Valid {
		return s, &BookingRejectedError{ActivityID: a.ID, Violations: v.Violations}
	}

	n := s.next()
	n.Selections = n.Selections.with(day, append(n.Selections.Day(day), a))
	return n, nil
}

// RemoveActivity drops an activity from a day. Removing an activity that
// is not selected is a no-op that still returns the receiver unchanged.
func (s State) RemoveActivity(day int, activityID string) State {
	if !s.Selections.Has(day, activityID) {
		return s
	}
	kept := slices.DeleteFunc(slices.Clone(s.Selections.Day(day)), func(a domain.Activity) bool {
		return a.ID == activityID
	})
	n := s.next()
	n.Selections = n.Selections.with(day, kept)
	return n
}

// SetDates replaces the trip dates. Selections on days past the new range
// are dropped and reported.
func (s State) SetDates(dates domain.TripDates) (State, []Pruned) {
	n := s.next()
	n.Dates = &dates

	var pruned []Pruned
	for _, day := range s.Selections.DaysSorted() {
		if dates.Contains(day) {
			continue
		}
		for _, a := range s.Selections.Day(day) {
			pruned = append(pruned, Pruned{
				Day:      day,
				Activity: a,
				Reason:   fmt.Sprintf("dia %d fora do período de %d dias", day, dates.Days),
			})
		}
		n.Selections = n.Selections.with(day, nil)
	}
	return n, pruned
}

// SetParty replaces the head counts. The party must be valid; selections
// the validator no longer accepts for the new roster are dropped and
// reported.
func (s State) SetParty(p domain.Party) (State, []Pruned, error) {
	if err := p.Validate(); err != nil {
		return s, nil, err
	}

	n := s.next()
	n.Party = p
	roster := p.Roster()

	var pruned []Pruned
	for _, day := range s.Selections.DaysSorted() {
		var kept []domain.Activity
		for _, a := range s.Selections.Day(day) {
			v := s.Validator.Validate(a, roster)
			if v.Valid {
				kept = append(kept, a)
				continue
			}
			pruned = append(pruned, Pruned{Day: day, Activity: a, Reason: strings.Join(v.Messages(), "; ")})
		}
		n.Selections = n.Selections.with(day, kept)
	}
	return n, pruned, nil
}

// SetAccommodation replaces the chosen accommodation.
func (s State) SetAccommodation(acc domain.Accommodation) State {
	n := s.next()
	n.Accommodation = &acc
	return n
}

// Generate assembles the itinerary for the current state and renders its
// text with the given generation time.
func (s State) Generate(generatedAt time.Time) (*itinerary.TripItinerary, error) {
	if s.Dates == nil {
		return nil, ErrMissingDates
	}
	if s.Accommodation == nil {
		return nil, ErrMissingAccommodation
	}

	it, err := itinerary.Build(*s.Dates, *s.Accommodation, s.Roster(), s.Selections.Map())
	if err != nil {
		return nil, fmt.Errorf("building itinerary: %w", err)
	}
	return it.WithText(render.Text(it, generatedAt)), nil
}
