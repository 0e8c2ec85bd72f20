package planner

import (
	"slices"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Selections maps a 1-based day to the activities chosen for it, in the
// order they were added. A nil Selections is empty and safe to read.
type Selections map[int][]domain.Activity

// Day returns the activities selected for day.
func (s Selections) Day(day int) []domain.Activity {
	return s[day]
}

// Has reports whether the activity id is already selected on day.
func (s Selections) Has(day int, activityID string) bool {
	return slices.ContainsFunc(s[day], func(a domain.Activity) bool {
		return a.ID == activityID
	})
}

// Count returns the number of selected activities across all days.
func (s Selections) Count() int {
	n := 0
	for _, acts := range s {
		n += len(acts)
	}
	return n
}

// DaysSorted returns the days that hold at least one activity, ascending.
func (s Selections) DaysSorted() []int {
	days := make([]int, 0, len(s))
	for day, acts := range s {
		if len(acts) > 0 {
			days = append(days, day)
		}
	}
	slices.Sort(days)
	return days
}

// Clone copies the map and each day's slice header so that writes to the
// clone never reach the original.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for day, acts := range s {
		out[day] = slices.Clone(acts)
	}
	return out
}

// Map returns a detached copy as a plain map for the aggregator.
func (s Selections) Map() map[int][]domain.Activity {
	return s.Clone()
}

func (s Selections) with(day int, acts []domain.Activity) Selections {
	if s == nil {
		s = Selections{}
	}
	if len(acts) == 0 {
		delete(s, day)
		return s
	}
	s[day] = acts
	return s
}
