package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/itinerary"
)

const DateLayout = "2006-01-02"

// DaySelection lists the activities wanted on one trip day, in order.
type DaySelection struct {
	Day         int      `json:"day" validate:"gte=1"`
	ActivityIDs []string `json:"activity_ids" validate:"dive,required"`
}

// PlanRequest describes a whole trip to assemble.
type PlanRequest struct {
	Arrival         string         `json:"arrival" validate:"required,datetime=2006-01-02"`
	Departure       string         `json:"departure" validate:"required,datetime=2006-01-02"`
	AccommodationID string         `json:"accommodation_id" validate:"required"`
	Party           PartyRequest   `json:"party"`
	Days            []DaySelection `json:"days" validate:"dive"`
}

func (r PlanRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.Party.validate()
}

// TripDates parses the request dates at midnight in loc.
func (r PlanRequest) TripDates(loc *time.Location) (domain.TripDates, error) {
	arrival, err := time.ParseInLocation(DateLayout, r.Arrival, loc)
	if err != nil {
		return domain.TripDates{}, fmt.Errorf("parsing arrival: %w", err)
	}
	departure, err := time.ParseInLocation(DateLayout, r.Departure, loc)
	if err != nil {
		return domain.TripDates{}, fmt.Errorf("parsing departure: %w", err)
	}
	return domain.NewTripDates(arrival, departure)
}

// LoadPlanRequest reads a plan request JSON file.
func LoadPlanRequest(path string) (*PlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req PlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &req, nil
}

// RejectedSelection is a requested activity left out of the itinerary.
type RejectedSelection struct {
	Day        int
	ActivityID string
	Reason     string
}

// PlanResponse is the assembled itinerary plus what could not be booked.
type PlanResponse struct {
	Itinerary   *itinerary.TripItinerary
	Rejected    []RejectedSelection
	GeneratedAt time.Time
}
