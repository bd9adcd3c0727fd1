package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

const maxNameLength = 200

// RoleAssignment is the outcome of replacing a hacker's roles. Requested
// roles that do not exist are dropped rather than failing the call.
type RoleAssignment struct {
	Roles        []*model.Role
	DroppedIDs   []uuid.UUID
	DroppedNames []string
}

// Partial reports whether some requested roles were dropped.
func (a *RoleAssignment) Partial() bool {
	return len(a.DroppedIDs) > 0 || len(a.DroppedNames) > 0
}

// HackerService handles hacker business logic
type HackerService struct {
	hackerRepo domainRepo.HackerRepository
	roleRepo   domainRepo.RoleRepository
	clock      clockwork.Clock
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewHackerService creates a new hacker service instance
func NewHackerService(
	hackerRepo domainRepo.HackerRepository,
	roleRepo domainRepo.RoleRepository,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *HackerService {
	return &HackerService{
		hackerRepo: hackerRepo,
		roleRepo:   roleRepo,
		clock:      clock,
		metrics:    m,
		logger:     logger,
	}
}

// Upsert creates the hacker for userID or renames the existing one.
// Returns the hacker id; repeated calls with the same userID return the same id.
func (s *HackerService) Upsert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if userID == uuid.Nil {
		return uuid.Nil, domainErrors.NewInvalidInputError("user_id", "must not be empty")
	}
	if err := validateName(name); err != nil {
		return uuid.Nil, err
	}

	id, err := s.hackerRepo.Upsert(ctx, userID, name, s.clock.Now())
	if apperrors.HasCode(err, apperrors.ErrConflict) {
		// a concurrent insert won the race on another constraint path; the row exists now
		s.logger.Warn("Retrying hacker upsert after conflict", zap.String("user_id", userID.String()))
		id, err = s.hackerRepo.Upsert(ctx, userID, name, s.clock.Now())
	}
	if err != nil {
		return uuid.Nil, err
	}

	s.metrics.HackerUpserted()
	s.logger.Info("Hacker upserted",
		zap.String("hacker_id", id.String()),
		zap.String("user_id", userID.String()))
	return id, nil
}

func (s *HackerService) GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	return s.hackerRepo.GetByID(ctx, id)
}

func (s *HackerService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error) {
	return s.hackerRepo.GetByUserID(ctx, userID)
}

func (s *HackerService) ListAll(ctx context.Context) ([]*model.Hacker, error) {
	return s.hackerRepo.List(ctx)
}

func (s *HackerService) Count(ctx context.Context) (int64, error) {
	return s.hackerRepo.Count(ctx)
}

// SetRoles replaces the hacker's full role set. Ids that match no role are
// dropped and logged; the result lists them.
func (s *HackerService) SetRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID) (*RoleAssignment, error) {
	requested := uniqueIDs(roleIDs)

	roles, err := s.roleRepo.FindByIDs(ctx, requested)
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(roles))
	for _, r := range roles {
		found[r.ID] = true
	}
	dropped := make([]uuid.UUID, 0)
	for _, id := range requested {
		if !found[id] {
			dropped = append(dropped, id)
		}
	}

	if err := s.hackerRepo.ReplaceRoles(ctx, hackerID, roleIDsOf(roles), s.clock.Now()); err != nil {
		return nil, err
	}

	assignment := &RoleAssignment{Roles: roles, DroppedIDs: dropped}
	s.recordAssignment(hackerID, assignment)
	return assignment, nil
}

// SetRolesByNames resolves the caller's hacker from userID and replaces its
// roles with the named ones. Unknown names are dropped and logged.
func (s *HackerService) SetRolesByNames(ctx context.Context, userID uuid.UUID, names []string) (*RoleAssignment, error) {
	hacker, err := s.hackerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	requested := uniqueStrings(names)
	roles, err := s.roleRepo.FindByNames(ctx, requested)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(roles))
	for _, r := range roles {
		found[string(r.Name)] = true
	}
	dropped := make([]string, 0)
	for _, name := range requested {
		if !found[name] {
			dropped = append(dropped, name)
		}
	}

	if err := s.hackerRepo.ReplaceRoles(ctx, hacker.ID, roleIDsOf(roles), s.clock.Now()); err != nil {
		return nil, err
	}

	assignment := &RoleAssignment{Roles: roles, DroppedNames: dropped}
	s.recordAssignment(hacker.ID, assignment)
	return assignment, nil
}

func (s *HackerService) recordAssignment(hackerID uuid.UUID, a *RoleAssignment) {
	s.metrics.RolesAssigned(len(a.DroppedIDs) + len(a.DroppedNames))
	if a.Partial() {
		dropped := make([]string, 0, len(a.DroppedIDs)+len(a.DroppedNames))
		for _, id := range a.DroppedIDs {
			dropped = append(dropped, id.String())
		}
		dropped = append(dropped, a.DroppedNames...)
		s.logger.Warn("Dropped unknown roles",
			zap.String("hacker_id", hackerID.String()),
			zap.Strings("dropped", dropped))
	}
	s.logger.Info("Hacker roles replaced",
		zap.String("hacker_id", hackerID.String()),
		zap.Int("roles", len(a.Roles)))
}

func validateName(name string) error {
	if name == "" {
		return domainErrors.NewInvalidInputError("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return domainErrors.NewInvalidInputError("name", "must be at most 200 characters")
	}
	return nil
}

func roleIDsOf(roles []*model.Role) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	return ids
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
