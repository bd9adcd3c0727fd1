package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
)

// winnerSolutionRepository implements the WinnerSolutionRepository interface
type winnerSolutionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWinnerSolutionRepository creates a new winner solution repository instance
func NewWinnerSolutionRepository(db *gorm.DB, logger *zap.Logger) domainRepo.WinnerSolutionRepository {
	return &winnerSolutionRepository{
		db:     db,
		logger: logger,
	}
}

// Create relies on the unique (hackathon_id, team_id) index rather than a prior
// read, so two concurrent submissions for one team yield exactly one row.
func (r *winnerSolutionRepository) Create(ctx context.Context, solution *model.WinnerSolution) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(solution).Error; err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrWinnerSolutionExists
			}
			r.logger.Error("Failed to create winner solution",
				zap.String("hackathon_id", solution.HackathonID.String()),
				zap.String("team_id", solution.TeamID.String()),
				zap.Error(err))
			return translateError(err, "failed to create winner solution")
		}

		link := model.WinnerSolutionTeamHackathon{
			WinnerSolutionID: solution.ID,
			TeamID:           solution.TeamID,
			HackathonID:      solution.HackathonID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return translateError(err, "failed to link winner solution")
		}

		return nil
	})
}

func (r *winnerSolutionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error) {
	var solution model.WinnerSolution

	err := conn(ctx, r.db).Where("id = ?", id).First(&solution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrWinnerSolutionNotFound
		}
		return nil, translateError(err, "failed to get winner solution")
	}

	return &solution, nil
}

func (r *winnerSolutionRepository) List(ctx context.Context) ([]*model.WinnerSolution, error) {
	var solutions []*model.WinnerSolution
	if err := conn(ctx, r.db).Order("created_at, id").Find(&solutions).Error; err != nil {
		return nil, translateError(err, "failed to list winner solutions")
	}
	return solutions, nil
}

func (r *winnerSolutionRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error) {
	var solutions []*model.WinnerSolution

	err := conn(ctx, r.db).
		Where("hackathon_id = ?", hackathonID).
		Order("win_money DESC, created_at").
		Find(&solutions).Error
	if err != nil {
		return nil, translateError(err, "failed to list winner solutions")
	}

	return solutions, nil
}
