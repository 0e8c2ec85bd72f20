package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/pricing"
	"github.com/alexanderramin/itinera/internal/repository"
)

type quoteService struct {
	activities repository.ActivityRepo
	validator  pricing.Validator
	observer   UseCaseObserver
}

func NewQuoteService(activities repository.ActivityRepo, observers ...UseCaseObserver) QuoteService {
	return &quoteService{
		activities: activities,
		validator:  pricing.DefaultValidator,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *quoteService) Quote(ctx context.Context, req contract.QuoteRequest) (resp *contract.QuoteResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity": req.ActivityID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "quote-activity",
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

	a, err := s.activities.GetByID(ctx, req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}

	roster := req.Party.Party().Roster()
	validation := s.validator.Validate(*a, roster)
	fields["travelers"] = len(roster)
	fields["eligible"] = validation.Valid

	return &contract.QuoteResponse{
		Activity:   *a,
		Roster:     roster,
		Pricing:    pricing.PriceActivity(*a, roster),
		Validation: validation,
	}, nil
}
