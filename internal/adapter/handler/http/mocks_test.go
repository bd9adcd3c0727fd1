package http_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "github.com/rdinit/hackathonService/internal/adapter/handler/http"
	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/middleware/auth"
	"github.com/rdinit/hackathonService/internal/usecase"
	"github.com/rdinit/hackathonService/pkg/logger"
)

// newTestEcho builds an echo instance with the production error handler and
// validator; a non-nil user is injected as the authenticated caller.
func newTestEcho(user *auth.AuthUser) *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewRequestValidator()
	logger.WithEchoLogger(e, zap.NewNop())
	if user != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.SetRequest(c.Request().WithContext(auth.WithUser(c.Request().Context(), user)))
				return next(c)
			}
		})
	}
	return e
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type MockHackerUsecase struct {
	mock.Mock
}

func (m *MockHackerUsecase) Upsert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockHackerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *MockHackerUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *MockHackerUsecase) ListAll(ctx context.Context) ([]*model.Hacker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Hacker), args.Error(1)
}

func (m *MockHackerUsecase) SetRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID) (*usecase.RoleAssignment, error) {
	args := m.Called(ctx, hackerID, roleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RoleAssignment), args.Error(1)
}

func (m *MockHackerUsecase) SetRolesByNames(ctx context.Context, userID uuid.UUID, names []string) (*usecase.RoleAssignment, error) {
	args := m.Called(ctx, userID, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RoleAssignment), args.Error(1)
}

type MockTeamUsecase struct {
	mock.Mock
}

func (m *MockTeamUsecase) Create(ctx context.Context, ownerID uuid.UUID, name string, maxSize int) (uuid.UUID, error) {
	args := m.Called(ctx, ownerID, name, maxSize)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTeamUsecase) AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error {
	return m.Called(ctx, teamID, hackerID).Error(0)
}

func (m *MockTeamUsecase) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamUsecase) ListAll(ctx context.Context) ([]*model.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamUsecase) ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error) {
	args := m.Called(ctx, hackerID)
	return args.Get(0).([]*model.Team), args.Error(1)
}

type MockHackathonUsecase struct {
	mock.Mock
}

func (m *MockHackathonUsecase) Upsert(ctx context.Context, in usecase.HackathonInput) (uuid.UUID, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockHackathonUsecase) GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hackathon), args.Error(1)
}

func (m *MockHackathonUsecase) ListAll(ctx context.Context) ([]*model.Hackathon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Hackathon), args.Error(1)
}

type MockWinnerSolutionUsecase struct {
	mock.Mock
}

func (m *MockWinnerSolutionUsecase) Create(ctx context.Context, in usecase.WinnerSolutionInput) (uuid.UUID, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWinnerSolutionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WinnerSolution), args.Error(1)
}

func (m *MockWinnerSolutionUsecase) ListAll(ctx context.Context) ([]*model.WinnerSolution, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.WinnerSolution), args.Error(1)
}

func (m *MockWinnerSolutionUsecase) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]*model.WinnerSolution), args.Error(1)
}
