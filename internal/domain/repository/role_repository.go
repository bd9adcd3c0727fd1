package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rdinit/hackathonService/internal/domain/model"
)

// RoleRepository defines the interface for role persistence
type RoleRepository interface {
	// EnsureExist inserts the missing names and leaves existing ones untouched.
	// Returns the number of rows inserted.
	EnsureExist(ctx context.Context, names []model.RoleName, now time.Time) (int64, error)

	List(ctx context.Context) ([]*model.Role, error)

	// GetByID returns ErrRoleNotFound when no row matches
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)

	// FindByIDs returns the roles that exist among ids; unknown ids are skipped
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Role, error)

	// FindByNames returns the roles that exist among names; unknown names are skipped
	FindByNames(ctx context.Context, names []string) ([]*model.Role, error)
}
