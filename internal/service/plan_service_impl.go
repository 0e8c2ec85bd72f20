package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
)

type planService struct {
	accommodations repository.AccommodationRepo
	activities     repository.ActivityRepo
	loc            *time.Location
	clock          func() time.Time
	observer       UseCaseObserver
}

// NewPlanService assembles itineraries in the given time zone. A nil loc
// means UTC.
func NewPlanService(
	accommodations repository.AccommodationRepo,
	activities repository.ActivityRepo,
	loc *time.Location,
	observers ...UseCaseObserver,
) PlanService {
	if loc == nil {
		loc = time.UTC
	}
	return &planService{
		accommodations: accommodations,
		activities:     activities,
		loc:            loc,
		clock:          time.Now,
		observer:       useCaseObserverOrNoop(observers),
	}
}

// Plan builds the itinerary for a request. Requested activities that are
// unknown or cannot be booked are skipped and reported in Rejected; the
// rest of the trip is still assembled.
func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"accommodation": req.AccommodationID,
		"arrival":       req.Arrival,
		"departure":     req.Departure,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-trip",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	dates, err := req.TripDates(s.loc)
	if err != nil {
		return nil, err
	}
	acc, err := s.accommodations.GetByID(ctx, req.AccommodationID)
	if err != nil {
		return nil, fmt.Errorf("loading accommodation: %w", err)
	}

	state, _ := planner.New().SetDates(dates)
	state = state.SetAccommodation(*acc)
	state, _, err = state.SetParty(req.Party.Party())
	if err != nil {
		return nil, err
	}

	var rejected []contract.RejectedSelection
	for _, sel := range req.Days {
		for _, id := range sel.ActivityIDs {
			a, getErr := s.activities.GetByID(ctx, id)
			if getErr != nil {
				if !errors.Is(getErr, repository.ErrNotFound) {
					return nil, fmt.Errorf("loading activity: %w", getErr)
				}
				rejected = append(rejected, contract.RejectedSelection{Day: sel.Day, ActivityID: id, Reason: "atividade não encontrada"})
				continue
			}

			next, addErr := state.AddActivity(sel.Day, *a)
			if addErr != nil {
				rejected = append(rejected, contract.RejectedSelection{Day: sel.Day, ActivityID: id, Reason: rejectionReason(addErr)})
				continue
			}
			state = next
		}
	}
	fields["activity_count"] = state.Selections.Count()
	fields["rejected_count"] = len(rejected)

	generatedAt := s.clock().In(s.loc)
	it, err := state.Generate(generatedAt)
	if err != nil {
		return nil, err
	}

	return &contract.PlanResponse{
		Itinerary:   it,
		Rejected:    rejected,
		GeneratedAt: generatedAt,
	}, nil
}

func rejectionReason(err error) string {
	var booking *planner.BookingRejectedError
	if errors.As(err, &booking) {
		msgs := make([]string, len(booking.Violations))
		for i, v := range booking.Violations {
			msgs[i] = v.Message
		}
		return strings.Join(msgs, "; ")
	}
	switch {
	case errors.Is(err, planner.ErrFullDayConflict):
		return planner.ErrFullDayConflict.Error()
	case errors.Is(err, planner.ErrDuplicateActivity):
		return "atividade já selecionada neste dia"
	case errors.Is(err, planner.ErrDayOutOfRange):
		return "dia fora do período da viagem"
	}
	return err.Error()
}
