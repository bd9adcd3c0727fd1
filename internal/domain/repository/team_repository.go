package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rdinit/hackathonService/internal/domain/model"
)

// TeamRepository defines the interface for team and membership persistence
type TeamRepository interface {
	// Create inserts the team row and fills team.ID.
	// Returns ErrDuplicateTeam when (owner_id, name) is taken.
	Create(ctx context.Context, team *model.Team) error

	// GetByID returns the team with members preloaded, or ErrTeamNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error)

	// GetForUpdate locks the team row until the surrounding transaction ends.
	// Members are not loaded. Returns ErrTeamNotFound when no row matches.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error)

	List(ctx context.Context) ([]*model.Team, error)

	// ListByMember returns the teams the hacker belongs to
	ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error)

	CountMembers(ctx context.Context, teamID uuid.UUID) (int64, error)
	IsMember(ctx context.Context, teamID, hackerID uuid.UUID) (bool, error)

	// AddMember inserts the junction row. Returns ErrAlreadyMember on a duplicate pair.
	AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error

	// Touch sets updated_at
	Touch(ctx context.Context, id uuid.UUID, now time.Time) error
}
