package pricing

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

type ViolationCode string

const (
	ViolationMinAdults   ViolationCode = "MIN_ADULTS"
	ViolationMaxCapacity ViolationCode = "MAX_CAPACITY"
	ViolationAdultsOnly  ViolationCode = "ADULTS_ONLY"
)

// Violation is one reason an activity cannot be booked for a roster.
type Violation struct {
	Code    ViolationCode
	Message string
}

// Validation is the eligibility verdict for one activity and roster.
type Validation struct {
	Valid      bool
	Violations []Violation
}

// Messages returns the human-readable reasons in rule order.
func (v Validation) Messages() []string {
	msgs := make([]string, len(v.Violations))
	for i, viol := range v.Violations {
		msgs[i] = viol.Message
	}
	return msgs
}

// ExclusionRule is an activity-specific restriction on who may book.
type ExclusionRule struct {
	Code     ViolationCode
	Message  string
	Excludes func(roster domain.Roster) bool
}

// AdultsOnly rejects any roster containing a child or infant.
var AdultsOnly = ExclusionRule{
	Code:     ViolationAdultsOnly,
	Message:  "Apenas adultos podem participar desta atividade",
	Excludes: domain.Roster.HasMinors,
}

// Validator checks booking eligibility. Rules holds the activity-specific
// exclusions keyed by activity id; activities flagged AdultsOnly in the
// catalog get the AdultsOnly rule regardless of the table.
type Validator struct {
	Rules map[string][]ExclusionRule
}

// DefaultValidator carries the exclusions known for the shipped catalog.
var DefaultValidator = Validator{
	Rules: map[string][]ExclusionRule{
		"quadriciclo_praia": {AdultsOnly},
	},
}

// ValidateBooking checks an activity against a roster with DefaultValidator.
func ValidateBooking(a domain.Activity, roster domain.Roster) Validation {
	return DefaultValidator.Validate(a, roster)
}

// Validate evaluates every rule in order without short-circuiting, so each
// failing rule contributes its own violation.
func (v Validator) Validate(a domain.Activity, roster domain.Roster) Validation {
	var violations []Violation

	if adults := roster.Counts().BillableAdults(); adults < a.MinAdults {
		violations = append(violations, Violation{
			Code:    ViolationMinAdults,
			Message: fmt.Sprintf("Mínimo de %d adulto(s) necessário(s)", a.MinAdults),
		})
	}

	if len(roster) > a.MaxCapacity {
		violations = append(violations, Violation{
			Code:    ViolationMaxCapacity,
			Message: fmt.Sprintf("Capacidade máxima de %d pessoas", a.MaxCapacity),
		})
	}

	for _, rule := range v.rulesFor(a) {
		if rule.Excludes(roster) {
			violations = append(violations, Violation{Code: rule.Code, Message: rule.Message})
		}
	}

	return Validation{Valid: len(violations) == 0, Violations: violations}
}

func (v Validator) rulesFor(a domain.Activity) []ExclusionRule {
	rules := v.Rules[a.ID]
	if !a.AdultsOnly {
		return rules
	}
	for _, r := range rules {
		if r.Code == ViolationAdultsOnly {
			return rules
		}
	}
	return append(append([]ExclusionRule(nil), rules...), AdultsOnly)
}
