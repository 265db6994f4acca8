package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/lib/logger/sl"
)

type RotationService struct {
	log          *slog.Logger
	rotationRepo RotationProvider
}

type RotationProvider interface {
	GetRotation() (json.RawMessage, error)
	SaveRotation(data json.RawMessage) error
}

func NewRotationService(
	log *slog.Logger,
	rotationRepo RotationProvider) *RotationService {
	return &RotationService{
		log:          log,
		rotationRepo: rotationRepo,
	}
}

// GetRotation returns the stored payload, or an empty object when the
// singleton has never been written.
func (s *RotationService) GetRotation(ctx context.Context) (json.RawMessage, error) {
	const op = "service.rotation.GetRotation"

	log := s.log.With(
		slog.String("op", op),
	)

	data, err := s.rotationRepo.GetRotation()
	if err != nil {
		if errors.Is(err, apperrors.ErrRotationNotSet) {
			log.Info("rotation not saved yet, returning empty object")
			return json.RawMessage(`{}`), nil
		}
		log.Error("failed to get rotation", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("rotation retrieved")

	return data, nil
}

func (s *RotationService) SaveRotation(ctx context.Context, data json.RawMessage) error {
	const op = "service.rotation.SaveRotation"

	log := s.log.With(
		slog.String("op", op),
	)

	if err := s.rotationRepo.SaveRotation(data); err != nil {
		log.Error("failed to save rotation", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("rotation saved")

	return nil
}
