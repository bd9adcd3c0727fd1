package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rdinit/hackathonService/internal/domain/model"
)

// WinnerSolutionRepository defines the interface for winner solution persistence
type WinnerSolutionRepository interface {
	// Create inserts the solution and its association row in one transaction.
	// Returns ErrWinnerSolutionExists when (hackathon_id, team_id) is taken.
	Create(ctx context.Context, solution *model.WinnerSolution) error

	// GetByID returns ErrWinnerSolutionNotFound when no row matches
	GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error)

	List(ctx context.Context) ([]*model.WinnerSolution, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error)
}
