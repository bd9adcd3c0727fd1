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

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *gorm.DB, logger *zap.Logger) domainRepo.TeamRepository {
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	err := conn(ctx, r.db).
		Omit(clause.Associations).
		Create(team).Error
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domainErrors.ErrDuplicateTeam
		case isForeignKeyViolation(err):
			return domainErrors.ErrHackerNotFound
		}
		r.logger.Error("Failed to create team",
			zap.String("owner_id", team.OwnerID.String()),
			zap.String("name", team.Name),
			zap.Error(err))
		return translateError(err, "failed to create team")
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team

	err := withMembers(conn(ctx, r.db)).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrTeamNotFound
		}
		return nil, translateError(err, "failed to get team")
	}

	return &team, nil
}

// GetForUpdate issues SELECT ... FOR UPDATE. Concurrent joins to the same team
// serialize on this lock, so the member count read afterwards stays valid
// until commit.
func (r *teamRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team

	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrTeamNotFound
		}
		return nil, translateError(err, "failed to lock team")
	}

	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team

	err := withMembers(conn(ctx, r.db)).
		Order("created_at, id").
		Find(&teams).Error
	if err != nil {
		return nil, translateError(err, "failed to list teams")
	}

	return teams, nil
}

func (r *teamRepository) ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error) {
	var teams []*model.Team

	err := withMembers(conn(ctx, r.db)).
		Joins("JOIN hacker_team_association hta ON hta.team_id = team.id").
		Where("hta.hacker_id = ?", hackerID).
		Order("team.created_at, team.id").
		Find(&teams).Error
	if err != nil {
		return nil, translateError(err, "failed to list teams by member")
	}

	return teams, nil
}

func (r *teamRepository) CountMembers(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64

	err := conn(ctx, r.db).Model(&model.HackerTeam{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count team members")
	}

	return count, nil
}

func (r *teamRepository) IsMember(ctx context.Context, teamID, hackerID uuid.UUID) (bool, error) {
	var count int64

	err := conn(ctx, r.db).Model(&model.HackerTeam{}).
		Where("team_id = ? AND hacker_id = ?", teamID, hackerID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "failed to check team membership")
	}

	return count > 0, nil
}

func (r *teamRepository) AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error {
	err := conn(ctx, r.db).Create(&model.HackerTeam{
		HackerID: hackerID,
		TeamID:   teamID,
	}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyMember
		}
		r.logger.Error("Failed to add team member",
			zap.String("team_id", teamID.String()),
			zap.String("hacker_id", hackerID.String()),
			zap.Error(err))
		return translateError(err, "failed to add team member")
	}
	return nil
}

func (r *teamRepository) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	res := conn(ctx, r.db).Model(&model.Team{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", now)
	if res.Error != nil {
		return translateError(res.Error, "failed to touch team")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrTeamNotFound
	}
	return nil
}

func withMembers(db *gorm.DB) *gorm.DB {
	return db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("hacker.created_at")
	})
}
