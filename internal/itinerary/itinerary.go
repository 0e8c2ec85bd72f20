package itinerary

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/pricing"
)

// SelectedActivity is an activity booked on a day for the trip's roster.
type SelectedActivity struct {
	Activity     domain.Activity
	Day          int
	Participants domain.Roster
}

type DayItinerary struct {
	Day        int
	Date       time.Time
	Activities []SelectedActivity
	Pricing    pricing.Breakdown
}

// IsFree reports whether nothing is booked on the day.
func (d DayItinerary) IsFree() bool {
	return len(d.Activities) == 0
}

// TripItinerary is built once per generate action. Only GeneratedText may
// change afterwards, through WithText, and never feeds back into pricing.
type TripItinerary struct {
	Dates         domain.TripDates
	Accommodation domain.Accommodation
	People        domain.Roster
	Days          []DayItinerary
	TotalPricing  pricing.Breakdown
	GeneratedText string
}

// WithText returns a copy carrying the given text, typically the user's
// edit of the rendered summary.
func (t *TripItinerary) WithText(text string) *TripItinerary {
	c := *t
	c.GeneratedText = text
	return &c
}

// ActivityCount returns the number of bookings across all days.
func (t *TripItinerary) ActivityCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Activities)
	}
	return n
}

// Build prices a selection map over the trip days. Days without selections
// are free days. Selections are trusted to have passed booking validation;
// a selection on a day outside the trip is a caller error.
func Build(
	dates domain.TripDates,
	acc domain.Accommodation,
	roster domain.Roster,
	selections map[int][]domain.Activity,
) (*TripItinerary, error) {
	if dates.Days < 1 {
		return nil, fmt.Errorf("trip must span at least one day (got %d)", dates.Days)
	}
	for day, acts := range selections {
		if len(acts) > 0 && !dates.Contains(day) {
			return nil, fmt.Errorf("selection on day %d outside trip of %d days", day, dates.Days)
		}
	}

	people := slices.Clone(roster)
	days := make([]DayItinerary, 0, dates.Days)
	dayPricings := make([]pricing.Breakdown, 0, dates.Days)

	for day := 1; day <= dates.Days; day++ {
		acts := selections[day]
		selected := make([]SelectedActivity, 0, len(acts))
		parts := make([]pricing.Breakdown, 0, len(acts))
		for _, a := range acts {
			selected = append(selected, SelectedActivity{Activity: a, Day: day, Participants: people})
			parts = append(parts, pricing.PriceActivity(a, people))
		}

		d := DayItinerary{
			Day:        day,
			Date:       dates.DateOfDay(day),
			Activities: selected,
			Pricing:    pricing.Fold(parts...),
		}
		days = append(days, d)
		dayPricings = append(dayPricings, d.Pricing)
	}

	return &TripItinerary{
		Dates:         dates,
		Accommodation: acc,
		People:        people,
		Days:          days,
		TotalPricing:  pricing.Fold(dayPricings...),
	}, nil
}
