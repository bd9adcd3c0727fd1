package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

// WinnerSolutionInput carries the fields of a new winner solution.
// CanShare defaults to true when nil.
type WinnerSolutionInput struct {
	HackathonID        uuid.UUID
	TeamID             uuid.UUID
	WinMoney           decimal.Decimal
	LinkToSolution     string
	LinkToPresentation string
	CanShare           *bool
}

// WinnerSolutionService handles winner solution business logic
type WinnerSolutionService struct {
	tx            domainRepo.Transactor
	winnerRepo    domainRepo.WinnerSolutionRepository
	hackathonRepo domainRepo.HackathonRepository
	teamRepo      domainRepo.TeamRepository
	clock         clockwork.Clock
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewWinnerSolutionService creates a new winner solution service instance
func NewWinnerSolutionService(
	tx domainRepo.Transactor,
	winnerRepo domainRepo.WinnerSolutionRepository,
	hackathonRepo domainRepo.HackathonRepository,
	teamRepo domainRepo.TeamRepository,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *WinnerSolutionService {
	return &WinnerSolutionService{
		tx:            tx,
		winnerRepo:    winnerRepo,
		hackathonRepo: hackathonRepo,
		teamRepo:      teamRepo,
		clock:         clock,
		metrics:       m,
		logger:        logger,
	}
}

// Create records the solution of a team for a hackathon. A team has at most
// one solution per hackathon; a second one fails with ErrWinnerSolutionExists.
func (s *WinnerSolutionService) Create(ctx context.Context, in WinnerSolutionInput) (uuid.UUID, error) {
	if in.WinMoney.IsNegative() {
		return uuid.Nil, domainErrors.NewInvalidInputError("win_money", "must not be negative")
	}
	in.LinkToSolution = strings.TrimSpace(in.LinkToSolution)
	in.LinkToPresentation = strings.TrimSpace(in.LinkToPresentation)
	if in.LinkToSolution == "" {
		return uuid.Nil, domainErrors.NewInvalidInputError("link_to_solution", "must not be empty")
	}
	if in.LinkToPresentation == "" {
		return uuid.Nil, domainErrors.NewInvalidInputError("link_to_presentation", "must not be empty")
	}

	canShare := true
	if in.CanShare != nil {
		canShare = *in.CanShare
	}

	now := s.clock.Now()
	solution := &model.WinnerSolution{
		HackathonID:        in.HackathonID,
		TeamID:             in.TeamID,
		WinMoney:           in.WinMoney,
		LinkToSolution:     in.LinkToSolution,
		LinkToPresentation: in.LinkToPresentation,
		CanShare:           canShare,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.hackathonRepo.GetByID(ctx, in.HackathonID); err != nil {
			return err
		}
		if _, err := s.teamRepo.GetByID(ctx, in.TeamID); err != nil {
			return err
		}
		return s.winnerRepo.Create(ctx, solution)
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrWinnerSolutionExists) {
			s.metrics.WinnerSolutionConflict()
		}
		s.logger.Warn("Winner solution rejected",
			zap.String("hackathon_id", in.HackathonID.String()),
			zap.String("team_id", in.TeamID.String()),
			zap.Error(err))
		return uuid.Nil, err
	}

	s.metrics.WinnerSolutionCreated()
	s.logger.Info("Winner solution created",
		zap.String("winner_solution_id", solution.ID.String()),
		zap.String("hackathon_id", in.HackathonID.String()),
		zap.String("team_id", in.TeamID.String()),
		zap.String("win_money", in.WinMoney.StringFixed(2)))
	return solution.ID, nil
}

func (s *WinnerSolutionService) GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error) {
	return s.winnerRepo.GetByID(ctx, id)
}

func (s *WinnerSolutionService) ListAll(ctx context.Context) ([]*model.WinnerSolution, error) {
	return s.winnerRepo.List(ctx)
}

// ListByHackathon returns the hackathon's solutions, highest prize first.
func (s *WinnerSolutionService) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error) {
	if _, err := s.hackathonRepo.GetByID(ctx, hackathonID); err != nil {
		return nil, err
	}
	return s.winnerRepo.ListByHackathon(ctx, hackathonID)
}
