package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"

	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// MockTransactor runs fn inline with the caller's context
type MockTransactor struct {
	calls int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// MockHackerRepository is a mock implementation of HackerRepository
type MockHackerRepository struct {
	mock.Mock
}

func (m *MockHackerRepository) Upsert(ctx context.Context, userID uuid.UUID, name string, now time.Time) (uuid.UUID, error) {
	args := m.Called(ctx, userID, name, now)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockHackerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *MockHackerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *MockHackerRepository) List(ctx context.Context) ([]*model.Hacker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Hacker), args.Error(1)
}

func (m *MockHackerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHackerRepository) ReplaceRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID, now time.Time) error {
	args := m.Called(ctx, hackerID, roleIDs, now)
	return args.Error(0)
}

func (m *MockHackerRepository) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) EnsureExist(ctx context.Context, names []model.RoleName, now time.Time) (int64, error) {
	args := m.Called(ctx, names, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*model.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Role, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByNames(ctx context.Context, names []string) ([]*model.Role, error) {
	args := m.Called(ctx, names)
	return args.Get(0).([]*model.Role), args.Error(1)
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*model.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error) {
	args := m.Called(ctx, hackerID)
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamRepository) CountMembers(ctx context.Context, teamID uuid.UUID) (int64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepository) IsMember(ctx context.Context, teamID, hackerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID, hackerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error {
	args := m.Called(ctx, teamID, hackerID)
	return args.Error(0)
}

func (m *MockTeamRepository) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

// MockHackathonRepository is a mock implementation of HackathonRepository
type MockHackathonRepository struct {
	mock.Mock
}

func (m *MockHackathonRepository) Upsert(ctx context.Context, hackathon *model.Hackathon) error {
	args := m.Called(ctx, hackathon)
	return args.Error(0)
}

func (m *MockHackathonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hackathon), args.Error(1)
}

func (m *MockHackathonRepository) List(ctx context.Context) ([]*model.Hackathon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Hackathon), args.Error(1)
}

// MockWinnerSolutionRepository is a mock implementation of WinnerSolutionRepository
type MockWinnerSolutionRepository struct {
	mock.Mock
}

func (m *MockWinnerSolutionRepository) Create(ctx context.Context, solution *model.WinnerSolution) error {
	args := m.Called(ctx, solution)
	return args.Error(0)
}

func (m *MockWinnerSolutionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WinnerSolution), args.Error(1)
}

func (m *MockWinnerSolutionRepository) List(ctx context.Context) ([]*model.WinnerSolution, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.WinnerSolution), args.Error(1)
}

func (m *MockWinnerSolutionRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]*model.WinnerSolution), args.Error(1)
}
