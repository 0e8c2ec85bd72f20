package pricing

import "github.com/alexanderramin/itinera/internal/domain"

// FullDayConflictMessage is reported when a day holds more than one
// full-day activity.
const FullDayConflictMessage = "Não é possível ter mais de uma atividade de dia inteiro no mesmo dia"

// CheckSchedulingConflicts inspects the activities booked on one day and
// returns a message per conflict found.
func CheckSchedulingConflicts(activities []domain.Activity) []string {
	fullDay := 0
	for _, a := range activities {
		if a.IsFullDay() {
			fullDay++
		}
	}

	var conflicts []string
	if fullDay > 1 {
		conflicts = append(conflicts, FullDayConflictMessage)
	}
	return conflicts
}
