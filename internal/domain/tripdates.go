package domain

import (
	"fmt"
	"time"
)

// TripDates is the confirmed arrival/departure pair with its derived day count.
type TripDates struct {
	Arrival   time.Time
	Departure time.Time
	Days      int
}

// NewTripDates derives the day count as the number of started 24h periods
// between arrival and departure. A zero-length range is a one-day trip.
func NewTripDates(arrival, departure time.Time) (TripDates, error) {
	if departure.Before(arrival) {
		return TripDates{}, fmt.Errorf("departure %s is before arrival %s",
			departure.Format(time.DateOnly), arrival.Format(time.DateOnly))
	}

	span := departure.Sub(arrival)
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}

	return TripDates{Arrival: arrival, Departure: departure, Days: days}, nil
}

// Contains reports whether day is a valid 1-based day index for the trip.
func (d TripDates) Contains(day int) bool {
	return day >= 1 && day <= d.Days
}

// DateOfDay returns the calendar date of the given 1-based day.
func (d TripDates) DateOfDay(day int) time.Time {
	return d.Arrival.AddDate(0, 0, day-1)
}
