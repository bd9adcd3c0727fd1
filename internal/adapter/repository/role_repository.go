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

// roleRepository implements the RoleRepository interface
type roleRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRoleRepository creates a new role repository instance
func NewRoleRepository(db *gorm.DB, logger *zap.Logger) domainRepo.RoleRepository {
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureExist uses ON CONFLICT (name) DO NOTHING, so repeated and concurrent
// calls converge on one row per name.
func (r *roleRepository) EnsureExist(ctx context.Context, names []model.RoleName, now time.Time) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	roles := make([]model.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, model.Role{Name: name, CreatedAt: now, UpdatedAt: now})
	}

	res := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&roles)
	if res.Error != nil {
		r.logger.Error("Failed to seed roles", zap.Error(res.Error))
		return 0, translateError(res.Error, "failed to seed roles")
	}

	return res.RowsAffected, nil
}

func (r *roleRepository) List(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	if err := conn(ctx, r.db).Order("name").Find(&roles).Error; err != nil {
		return nil, translateError(err, "failed to list roles")
	}
	return roles, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role

	err := conn(ctx, r.db).Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrRoleNotFound
		}
		return nil, translateError(err, "failed to get role")
	}

	return &role, nil
}

func (r *roleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Role, error) {
	roles := []*model.Role{}
	if len(ids) == 0 {
		return roles, nil
	}

	if err := conn(ctx, r.db).Where("id IN ?", ids).Order("name").Find(&roles).Error; err != nil {
		return nil, translateError(err, "failed to find roles")
	}
	return roles, nil
}

func (r *roleRepository) FindByNames(ctx context.Context, names []string) ([]*model.Role, error) {
	roles := []*model.Role{}
	if len(names) == 0 {
		return roles, nil
	}

	if err := conn(ctx, r.db).Where("name IN ?", names).Order("name").Find(&roles).Error; err != nil {
		return nil, translateError(err, "failed to find roles")
	}
	return roles, nil
}
