package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rdinit/hackathonService/internal/domain/model"
)

// HackerRepository defines the interface for hacker persistence
type HackerRepository interface {
	// Upsert inserts a hacker or, when userID already exists, overwrites its
	// name and updated_at. Returns the id of the stored row.
	Upsert(ctx context.Context, userID uuid.UUID, name string, now time.Time) (uuid.UUID, error)

	// GetByID returns ErrHackerNotFound when no row matches
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error)

	// GetByUserID returns ErrHackerNotFound when no row matches
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error)

	// List returns every hacker with roles and teams preloaded
	List(ctx context.Context) ([]*model.Hacker, error)

	// Count returns the number of hackers
	Count(ctx context.Context) (int64, error)

	// ReplaceRoles swaps the hacker's role set for roleIDs and bumps updated_at
	ReplaceRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID, now time.Time) error

	// Touch sets updated_at
	Touch(ctx context.Context, id uuid.UUID, now time.Time) error
}
