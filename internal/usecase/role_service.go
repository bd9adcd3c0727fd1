package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

// RoleService handles the fixed role catalogue
type RoleService struct {
	roleRepo domainRepo.RoleRepository
	clock    clockwork.Clock
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRoleService creates a new role service instance
func NewRoleService(roleRepo domainRepo.RoleRepository, clock clockwork.Clock, m *metrics.Metrics, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		clock:    clock,
		metrics:  m,
		logger:   logger,
	}
}

// Seed makes sure every enumerated role exists. Safe to run repeatedly and
// from several processes at once.
func (s *RoleService) Seed(ctx context.Context) error {
	inserted, err := s.roleRepo.EnsureExist(ctx, model.AllRoleNames(), s.clock.Now())
	if err != nil {
		s.logger.Error("Failed to seed roles", zap.Error(err))
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	s.metrics.RolesSeeded(inserted)
	s.logger.Info("Roles seeded",
		zap.Int64("inserted", inserted),
		zap.Int("total", len(model.AllRoleNames())))
	return nil
}

func (s *RoleService) ListAll(ctx context.Context) ([]*model.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}
