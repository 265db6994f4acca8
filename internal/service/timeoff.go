package service

import (
	"context"
	"fmt"
	"log/slog"

	"team-calendar/internal/domain/models"
	"team-calendar/internal/lib/logger/sl"
)

type TimeOffService struct {
	log         *slog.Logger
	timeOffRepo TimeOffProvider
}

type TimeOffProvider interface {
	ListEntries() ([]models.TimeOffEntry, error)
	CreateEntry(entry models.TimeOffEntry) (models.TimeOffEntry, error)
	DeleteEntry(id int) error
}

func NewTimeOffService(
	log *slog.Logger,
	timeOffRepo TimeOffProvider) *TimeOffService {
	return &TimeOffService{
		log:         log,
		timeOffRepo: timeOffRepo,
	}
}

func (s *TimeOffService) ListEntries(ctx context.Context) ([]models.TimeOffEntry, error) {
	const op = "service.timeoff.ListEntries"

	log := s.log.With(
		slog.String("op", op),
	)

	entries, err := s.timeOffRepo.ListEntries()
	if err != nil {
		log.Error("failed to list time-off entries", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("time-off entries listed", slog.Int("count", len(entries)))

	return entries, nil
}

// CreateEntry intentionally performs no presence or range validation:
// absent fields are stored as NULL and memberId is not checked against
// the members collection.
func (s *TimeOffService) CreateEntry(ctx context.Context, entry models.TimeOffEntry) (models.TimeOffEntry, error) {
	const op = "service.timeoff.CreateEntry"

	log := s.log.With(
		slog.String("op", op),
	)

	created, err := s.timeOffRepo.CreateEntry(entry)
	if err != nil {
		log.Error("failed to create time-off entry", sl.Err(err))
		return models.TimeOffEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("time-off entry created", slog.Int("id", created.ID))

	return created, nil
}

func (s *TimeOffService) DeleteEntry(ctx context.Context, id int) error {
	const op = "service.timeoff.DeleteEntry"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("id", id),
	)

	if err := s.timeOffRepo.DeleteEntry(id); err != nil {
		log.Error("failed to delete time-off entry", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("time-off entry deleted")

	return nil
}
