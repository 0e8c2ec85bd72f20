package domain

import "fmt"

type TravelerType string

const (
	TravelerAdult  TravelerType = "adult"
	TravelerSenior TravelerType = "senior"
	TravelerChild  TravelerType = "child"
	TravelerInfant TravelerType = "infant"
)

// ActivityCategory is the closed set of catalog groupings shown as tabs.
type ActivityCategory string

const (
	CategoryMostRequested ActivityCategory = "mais_procurados"
	CategoryExperiences   ActivityCategory = "experiencias"
	CategoryMaritime      ActivityCategory = "maritimos"
	CategoryQuadBike      ActivityCategory = "quadriciclos"
	CategoryPrivate       ActivityCategory = "privativos"
	CategoryPackages      ActivityCategory = "pacotes"
	CategoryTransfers     ActivityCategory = "transfers"
)

// Categories lists every category in display order.
var Categories = []ActivityCategory{
	CategoryMostRequested,
	CategoryExperiences,
	CategoryMaritime,
	CategoryQuadBike,
	CategoryPrivate,
	CategoryPackages,
	CategoryTransfers,
}

// ParseCategory maps a catalog tag onto the closed category set.
func ParseCategory(s string) (ActivityCategory, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown activity category %q", s)
}

// Label returns the display label for the category.
func (c ActivityCategory) Label() string {
	switch c {
	case CategoryMostRequested:
		return "Mais Procurados"
	case CategoryExperiences:
		return "Experiências"
	case CategoryMaritime:
		return "Marítimos"
	case CategoryQuadBike:
		return "Quadriciclos"
	case CategoryPrivate:
		return "Privativos"
	case CategoryPackages:
		return "Pacotes"
	case CategoryTransfers:
		return "Transfers"
	}
	panic(fmt.Sprintf("unhandled activity category %q", string(c)))
}

// Icon returns the emoji shown next to the category label.
func (c ActivityCategory) Icon() string {
	switch c {
	case CategoryMostRequested:
		return "⭐"
	case CategoryExperiences:
		return "🌟"
	case CategoryMaritime:
		return "🚤"
	case CategoryQuadBike:
		return "🏍️"
	case CategoryPrivate:
		return "👑"
	case CategoryPackages:
		return "📦"
	case CategoryTransfers:
		return "🚗"
	}
	panic(fmt.Sprintf("unhandled activity category %q", string(c)))
}

// UnitType is how an activity is booked within a day.
type UnitType string

const (
	UnitFullDay    UnitType = "full_day"
	UnitHalfDay    UnitType = "half_day"
	UnitTransfer   UnitType = "transfer"
	UnitExperience UnitType = "experience"
)

// UnitTypes lists every unit type.
var UnitTypes = []UnitType{UnitFullDay, UnitHalfDay, UnitTransfer, UnitExperience}

// ParseUnitType maps a catalog tag onto the closed unit-type set.
func ParseUnitType(s string) (UnitType, error) {
	for _, u := range UnitTypes {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown activity type %q", s)
}

func (u UnitType) Label() string {
	switch u {
	case UnitFullDay:
		return "Dia Inteiro"
	case UnitHalfDay:
		return "Meio Dia"
	case UnitTransfer:
		return "Transfer"
	case UnitExperience:
		return "Experiência"
	}
	panic(fmt.Sprintf("unhandled unit type %q", string(u)))
}
