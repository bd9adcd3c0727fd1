package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

// TeamService handles team creation and membership
type TeamService struct {
	tx         domainRepo.Transactor
	teamRepo   domainRepo.TeamRepository
	hackerRepo domainRepo.HackerRepository
	clock      clockwork.Clock
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTeamService creates a new team service instance
func NewTeamService(
	tx domainRepo.Transactor,
	teamRepo domainRepo.TeamRepository,
	hackerRepo domainRepo.HackerRepository,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		tx:         tx,
		teamRepo:   teamRepo,
		hackerRepo: hackerRepo,
		clock:      clock,
		metrics:    m,
		logger:     logger,
	}
}

// Create inserts a team owned by ownerID and makes the owner its first member.
// The team row and the owner membership are written in one transaction.
func (s *TeamService) Create(ctx context.Context, ownerID uuid.UUID, name string, maxSize int) (uuid.UUID, error) {
	if maxSize <= 0 {
		return uuid.Nil, domainErrors.ErrInvalidTeamSize
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return uuid.Nil, err
	}

	now := s.clock.Now()
	team := &model.Team{
		OwnerID:   ownerID,
		Name:      name,
		MaxSize:   maxSize,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.hackerRepo.GetByID(ctx, ownerID); err != nil {
			return err
		}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return err
		}
		if err := s.teamRepo.AddMember(ctx, team.ID, ownerID); err != nil {
			return err
		}
		return s.hackerRepo.Touch(ctx, ownerID, now)
	})
	if err != nil {
		s.logger.Warn("Team creation rejected",
			zap.String("owner_id", ownerID.String()),
			zap.String("name", name),
			zap.Error(err))
		return uuid.Nil, err
	}

	s.metrics.TeamCreated()
	s.logger.Info("Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int("max_size", maxSize))
	return team.ID, nil
}

// AddMember adds hackerID to teamID. The team row is locked for the whole
// check-and-insert, so concurrent joins never push the team past max_size.
func (s *TeamService) AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetForUpdate(ctx, teamID)
		if err != nil {
			return err
		}
		if _, err := s.hackerRepo.GetByID(ctx, hackerID); err != nil {
			return err
		}

		count, err := s.teamRepo.CountMembers(ctx, teamID)
		if err != nil {
			return err
		}
		if count >= int64(team.MaxSize) {
			return domainErrors.ErrTeamFull
		}

		member, err := s.teamRepo.IsMember(ctx, teamID, hackerID)
		if err != nil {
			return err
		}
		if member {
			return domainErrors.ErrAlreadyMember
		}

		if err := s.teamRepo.AddMember(ctx, teamID, hackerID); err != nil {
			return err
		}

		now := s.clock.Now()
		if err := s.teamRepo.Touch(ctx, teamID, now); err != nil {
			return err
		}
		return s.hackerRepo.Touch(ctx, hackerID, now)
	})
	if err != nil {
		s.recordRejection(err)
		s.logger.Info("Team join rejected",
			zap.String("team_id", teamID.String()),
			zap.String("hacker_id", hackerID.String()),
			zap.Error(err))
		return err
	}

	s.metrics.MembershipAdded()
	s.logger.Info("Hacker added to team",
		zap.String("team_id", teamID.String()),
		zap.String("hacker_id", hackerID.String()))
	return nil
}

func (s *TeamService) recordRejection(err error) {
	switch {
	case errors.Is(err, domainErrors.ErrTeamFull):
		s.metrics.MembershipRejected(metrics.ReasonTeamFull)
	case errors.Is(err, domainErrors.ErrAlreadyMember):
		s.metrics.MembershipRejected(metrics.ReasonAlreadyMember)
	case errors.Is(err, domainErrors.ErrTeamNotFound), errors.Is(err, domainErrors.ErrHackerNotFound):
		s.metrics.MembershipRejected(metrics.ReasonNotFound)
	}
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *TeamService) ListAll(ctx context.Context) ([]*model.Team, error) {
	return s.teamRepo.List(ctx)
}

// ListByMember returns the teams hackerID belongs to, owned ones included.
func (s *TeamService) ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error) {
	return s.teamRepo.ListByMember(ctx, hackerID)
}
