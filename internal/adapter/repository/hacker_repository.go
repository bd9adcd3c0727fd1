package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
)

// hackerRepository implements the HackerRepository interface
type hackerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHackerRepository creates a new hacker repository instance
func NewHackerRepository(db *gorm.DB, logger *zap.Logger) domainRepo.HackerRepository {
	return &hackerRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert is a single INSERT ... ON CONFLICT (user_id) DO UPDATE ... RETURNING id,
// so concurrent calls for one user resolve to the same row without surfacing a conflict.
func (r *hackerRepository) Upsert(ctx context.Context, userID uuid.UUID, name string, now time.Time) (uuid.UUID, error) {
	hacker := model.Hacker{
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := conn(ctx, r.db).
		Omit(clause.Associations).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(&hacker).Error
	if err != nil {
		r.logger.Error("Failed to upsert hacker",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return uuid.Nil, translateError(err, "failed to upsert hacker")
	}

	return hacker.ID, nil
}

func (r *hackerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *hackerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error) {
	return r.getBy(ctx, "user_id = ?", userID)
}

func (r *hackerRepository) getBy(ctx context.Context, query string, arg uuid.UUID) (*model.Hacker, error) {
	var hacker model.Hacker

	err := r.withRelations(conn(ctx, r.db)).
		Where(query, arg).
		First(&hacker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrHackerNotFound
		}
		return nil, translateError(err, "failed to get hacker")
	}

	return &hacker, nil
}

func (r *hackerRepository) List(ctx context.Context) ([]*model.Hacker, error) {
	var hackers []*model.Hacker

	err := r.withRelations(conn(ctx, r.db)).
		Order("created_at, id").
		Find(&hackers).Error
	if err != nil {
		return nil, translateError(err, "failed to list hackers")
	}

	return hackers, nil
}

func (r *hackerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.Hacker{}).Count(&count).Error; err != nil {
		return 0, translateError(err, "failed to count hackers")
	}
	return count, nil
}

// ReplaceRoles deletes the current associations and inserts roleIDs in one transaction.
func (r *hackerRepository) ReplaceRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID, now time.Time) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&model.Hacker{}).
			Where("id = ?", hackerID).
			UpdateColumn("updated_at", now)
		if res.Error != nil {
			return translateError(res.Error, "failed to touch hacker")
		}
		if res.RowsAffected == 0 {
			return domainErrors.ErrHackerNotFound
		}

		if err := tx.Where("hacker_id = ?", hackerID).Delete(&model.HackerRole{}).Error; err != nil {
			return translateError(err, "failed to clear hacker roles")
		}

		if len(roleIDs) == 0 {
			return nil
		}

		rows := make([]model.HackerRole, 0, len(roleIDs))
		for _, roleID := range roleIDs {
			rows = append(rows, model.HackerRole{HackerID: hackerID, RoleID: roleID})
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			r.logger.Error("Failed to assign hacker roles",
				zap.String("hacker_id", hackerID.String()),
				zap.Int("roles", len(roleIDs)),
				zap.Error(err))
			return translateError(err, "failed to assign hacker roles")
		}

		return nil
	})
}

func (r *hackerRepository) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	res := conn(ctx, r.db).Model(&model.Hacker{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", now)
	if res.Error != nil {
		return translateError(res.Error, "failed to touch hacker")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrHackerNotFound
	}
	return nil
}

func (r *hackerRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("role.name") }).
		Preload("Teams", func(db *gorm.DB) *gorm.DB { return db.Order("team.created_at") })
}
