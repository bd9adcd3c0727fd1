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

// hackathonRepository implements the HackathonRepository interface
type hackathonRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHackathonRepository creates a new hackathon repository instance
func NewHackathonRepository(db *gorm.DB, logger *zap.Logger) domainRepo.HackathonRepository {
	return &hackathonRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert overwrites every mutable column of the row keyed by (name, start_of_hack);
// created_at keeps its original value.
func (r *hackathonRepository) Upsert(ctx context.Context, hackathon *model.Hackathon) error {
	err := conn(ctx, r.db).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}, {Name: "start_of_hack"}},
				DoUpdates: clause.AssignmentColumns(model.HackathonMutableColumns),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(hackathon).Error
	if err != nil {
		r.logger.Error("Failed to upsert hackathon",
			zap.String("name", hackathon.Name),
			zap.Time("start_of_hack", hackathon.StartOfHack),
			zap.Error(err))
		return translateError(err, "failed to upsert hackathon")
	}
	return nil
}

func (r *hackathonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error) {
	var hackathon model.Hackathon

	err := conn(ctx, r.db).Where("id = ?", id).First(&hackathon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrHackathonNotFound
		}
		return nil, translateError(err, "failed to get hackathon")
	}

	return &hackathon, nil
}

func (r *hackathonRepository) List(ctx context.Context) ([]*model.Hackathon, error) {
	var hackathons []*model.Hackathon
	if err := conn(ctx, r.db).Order("start_of_hack, name").Find(&hackathons).Error; err != nil {
		return nil, translateError(err, "failed to list hackathons")
	}
	return hackathons, nil
}
