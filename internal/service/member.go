package service

import (
	"context"
	"fmt"
	"log/slog"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/domain/models"
	"team-calendar/internal/lib/logger/sl"
)

type MemberService struct {
	log        *slog.Logger
	memberRepo MemberProvider
}

type MemberProvider interface {
	ListMembers() ([]models.TeamMember, error)
	CreateMember(name string) (models.TeamMember, error)
	DeleteMember(id int) error
}

func NewMemberService(
	log *slog.Logger,
	memberRepo MemberProvider) *MemberService {
	return &MemberService{
		log:        log,
		memberRepo: memberRepo,
	}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	const op = "service.member.ListMembers"

	log := s.log.With(
		slog.String("op", op),
	)

	members, err := s.memberRepo.ListMembers()
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("members listed", slog.Int("count", len(members)))

	return members, nil
}

func (s *MemberService) CreateMember(ctx context.Context, name string) (models.TeamMember, error) {
	const op = "service.member.CreateMember"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", name),
	)

	if name == "" {
		log.Error("member name is required")
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, apperrors.ErrNameRequired)
	}

	member, err := s.memberRepo.CreateMember(name)
	if err != nil {
		log.Error("failed to create member", sl.Err(err))
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("member created", slog.Int("id", member.ID))

	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id int) error {
	const op = "service.member.DeleteMember"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("id", id),
	)

	if err := s.memberRepo.DeleteMember(id); err != nil {
		log.Error("failed to delete member", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("member deleted with time-off entries")

	return nil
}
