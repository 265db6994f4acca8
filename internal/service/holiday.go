package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/domain/models"
	"team-calendar/internal/lib/logger/sl"
)

// countries is the fixed set the proxy fans out to. Results are flattened
// in this order regardless of which fetch finishes first.
var countries = []string{"HU", "DE", "AT"}

type HolidayService struct {
	log    *slog.Logger
	client HolidayProvider
}

type HolidayProvider interface {
	PublicHolidays(ctx context.Context, year, countryCode string) ([]models.Holiday, error)
}

func NewHolidayService(
	log *slog.Logger,
	client HolidayProvider) *HolidayService {
	return &HolidayService{
		log:    log,
		client: client,
	}
}

// GetHolidays fetches all configured countries concurrently and joins on
// every fetch. A single failure fails the whole operation; partial results
// are discarded.
func (s *HolidayService) GetHolidays(ctx context.Context, year string) ([]models.Holiday, error) {
	const op = "service.holiday.GetHolidays"

	log := s.log.With(
		slog.String("op", op),
		slog.String("year", year),
	)

	type fetchResult struct {
		index    int
		holidays []models.Holiday
		err      error
	}

	resultChan := make(chan fetchResult, len(countries))
	var wg sync.WaitGroup

	for i, countryCode := range countries {
		wg.Add(1)
		go func(index int, countryCode string) {
			defer wg.Done()

			holidays, err := s.client.PublicHolidays(ctx, year, countryCode)
			resultChan <- fetchResult{
				index:    index,
				holidays: holidays,
				err:      err,
			}
		}(i, countryCode)
	}

	wg.Wait()
	close(resultChan)

	perCountry := make([][]models.Holiday, len(countries))
	for result := range resultChan {
		if result.err != nil {
			log.Error("holiday fetch failed",
				slog.String("country", countries[result.index]),
				sl.Err(result.err))
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrHolidayFetch)
		}
		perCountry[result.index] = result.holidays
	}

	var flattened []models.Holiday
	for _, holidays := range perCountry {
		flattened = append(flattened, holidays...)
	}
	if flattened == nil {
		flattened = []models.Holiday{}
	}

	log.Info("holidays retrieved",
		slog.Int("country_count", len(countries)),
		slog.Int("holiday_count", len(flattened)))

	return flattened, nil
}
