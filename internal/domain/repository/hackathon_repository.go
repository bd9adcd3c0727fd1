package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rdinit/hackathonService/internal/domain/model"
)

// HackathonRepository defines the interface for hackathon persistence
type HackathonRepository interface {
	// Upsert inserts the hackathon or overwrites the mutable fields of the row
	// with the same (name, start_of_hack). Fills hackathon.ID with the stored id.
	Upsert(ctx context.Context, hackathon *model.Hackathon) error

	// GetByID returns ErrHackathonNotFound when no row matches
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error)

	List(ctx context.Context) ([]*model.Hackathon, error)
}
