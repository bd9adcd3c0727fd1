package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

func newHackerService(hackers *MockHackerRepository, roles *MockRoleRepository) *usecase.HackerService {
	return usecase.NewHackerService(hackers, roles, newTestClock(), newTestMetrics(), zap.NewNop())
}

func TestHackerService_Upsert(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hackerID := uuid.New()

	t.Run("same user keeps its id and the last name wins", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		service := newHackerService(hackers, new(MockRoleRepository))

		hackers.On("Upsert", ctx, userID, "Alice", testNow).Return(hackerID, nil)
		hackers.On("Upsert", ctx, userID, "Alice B", testNow).Return(hackerID, nil)

		first, err := service.Upsert(ctx, userID, "Alice")
		require.NoError(t, err)
		second, err := service.Upsert(ctx, userID, "  Alice B ")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		hackers.AssertExpectations(t)
	})

	t.Run("empty name is rejected before the store", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		service := newHackerService(hackers, new(MockRoleRepository))

		_, err := service.Upsert(ctx, userID, "   ")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
		hackers.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("overlong name is rejected", func(t *testing.T) {
		service := newHackerService(new(MockHackerRepository), new(MockRoleRepository))

		_, err := service.Upsert(ctx, userID, strings.Repeat("x", 201))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))

		_, err = service.Upsert(ctx, userID, strings.Repeat("Я", 201))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("name length counts characters not bytes", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		service := newHackerService(hackers, new(MockRoleRepository))

		name := strings.Repeat("Я", 200)
		hackers.On("Upsert", ctx, userID, name, testNow).Return(hackerID, nil)

		id, err := service.Upsert(ctx, userID, name)
		require.NoError(t, err)
		assert.Equal(t, hackerID, id)
		hackers.AssertExpectations(t)
	})

	t.Run("nil user id is rejected", func(t *testing.T) {
		service := newHackerService(new(MockHackerRepository), new(MockRoleRepository))

		_, err := service.Upsert(ctx, uuid.Nil, "Alice")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("conflict is retried once", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		service := newHackerService(hackers, new(MockRoleRepository))

		hackers.On("Upsert", ctx, userID, "Alice", testNow).Return(uuid.Nil, apperrors.Conflict("duplicate key")).Once()
		hackers.On("Upsert", ctx, userID, "Alice", testNow).Return(hackerID, nil).Once()

		id, err := service.Upsert(ctx, userID, "Alice")
		require.NoError(t, err)
		assert.Equal(t, hackerID, id)
		hackers.AssertNumberOfCalls(t, "Upsert", 2)
	})
}

func TestHackerService_SetRoles(t *testing.T) {
	ctx := context.Background()
	hackerID := uuid.New()
	backend := &model.Role{ID: uuid.New(), Name: model.RoleBackend}
	qa := &model.Role{ID: uuid.New(), Name: model.RoleQA}

	t.Run("replaces the full set", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		requested := []uuid.UUID{backend.ID, qa.ID}
		roles.On("FindByIDs", ctx, requested).Return([]*model.Role{backend, qa}, nil)
		hackers.On("ReplaceRoles", ctx, hackerID, requested, testNow).Return(nil)

		result, err := service.SetRoles(ctx, hackerID, requested)
		require.NoError(t, err)
		assert.Len(t, result.Roles, 2)
		assert.False(t, result.Partial())
		hackers.AssertExpectations(t)
	})

	t.Run("unknown ids are dropped and duplicates collapsed", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		unknown := uuid.New()
		roles.On("FindByIDs", ctx, []uuid.UUID{backend.ID, unknown}).Return([]*model.Role{backend}, nil)
		hackers.On("ReplaceRoles", ctx, hackerID, []uuid.UUID{backend.ID}, testNow).Return(nil)

		result, err := service.SetRoles(ctx, hackerID, []uuid.UUID{backend.ID, unknown, backend.ID})
		require.NoError(t, err)
		assert.True(t, result.Partial())
		assert.Equal(t, []uuid.UUID{unknown}, result.DroppedIDs)
		hackers.AssertExpectations(t)
	})

	t.Run("empty list clears roles", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		roles.On("FindByIDs", ctx, []uuid.UUID{}).Return([]*model.Role{}, nil)
		hackers.On("ReplaceRoles", ctx, hackerID, []uuid.UUID{}, testNow).Return(nil)

		result, err := service.SetRoles(ctx, hackerID, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Roles)
	})

	t.Run("missing hacker", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		roles.On("FindByIDs", ctx, []uuid.UUID{qa.ID}).Return([]*model.Role{qa}, nil)
		hackers.On("ReplaceRoles", ctx, hackerID, []uuid.UUID{qa.ID}, testNow).Return(domainErrors.ErrHackerNotFound)

		_, err := service.SetRoles(ctx, hackerID, []uuid.UUID{qa.ID})
		assert.ErrorIs(t, err, domainErrors.ErrHackerNotFound)
	})
}

func TestHackerService_SetRolesByNames(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hacker := &model.Hacker{ID: uuid.New(), UserID: userID, Name: "Alice"}
	ml := &model.Role{ID: uuid.New(), Name: model.RoleML}

	t.Run("resolves the caller and drops unknown names", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		hackers.On("GetByUserID", ctx, userID).Return(hacker, nil)
		roles.On("FindByNames", ctx, []string{"ML", "Wizard"}).Return([]*model.Role{ml}, nil)
		hackers.On("ReplaceRoles", ctx, hacker.ID, []uuid.UUID{ml.ID}, testNow).Return(nil)

		result, err := service.SetRolesByNames(ctx, userID, []string{"ML", " Wizard", "ML", ""})
		require.NoError(t, err)
		assert.Equal(t, []string{"Wizard"}, result.DroppedNames)
		hackers.AssertExpectations(t)
	})

	t.Run("caller without a hacker", func(t *testing.T) {
		hackers := new(MockHackerRepository)
		roles := new(MockRoleRepository)
		service := newHackerService(hackers, roles)

		hackers.On("GetByUserID", ctx, userID).Return(nil, domainErrors.ErrHackerNotFound)

		_, err := service.SetRolesByNames(ctx, userID, []string{"ML"})
		assert.ErrorIs(t, err, domainErrors.ErrHackerNotFound)
		roles.AssertNotCalled(t, "FindByNames", mock.Anything, mock.Anything)
	})
}
