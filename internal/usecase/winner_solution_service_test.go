package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
)

type winnerFixture struct {
	winners    *MockWinnerSolutionRepository
	hackathons *MockHackathonRepository
	teams      *MockTeamRepository
	service    *usecase.WinnerSolutionService
}

func newWinnerFixture() *winnerFixture {
	f := &winnerFixture{
		winners:    new(MockWinnerSolutionRepository),
		hackathons: new(MockHackathonRepository),
		teams:      new(MockTeamRepository),
	}
	f.service = usecase.NewWinnerSolutionService(&MockTransactor{}, f.winners, f.hackathons, f.teams,
		newTestClock(), newTestMetrics(), zap.NewNop())
	return f
}

func TestWinnerSolutionService_Create(t *testing.T) {
	ctx := context.Background()
	hackathon := &model.Hackathon{ID: uuid.New(), Name: "Spring AI"}
	team := &model.Team{ID: uuid.New(), Name: "Rockets"}
	input := usecase.WinnerSolutionInput{
		HackathonID:        hackathon.ID,
		TeamID:             team.ID,
		WinMoney:           decimal.RequireFromString("5000"),
		LinkToSolution:     "https://github.com/rockets/solution",
		LinkToPresentation: "https://slides.com/rockets/deck",
	}

	t.Run("share flag defaults to true", func(t *testing.T) {
		f := newWinnerFixture()
		solutionID := uuid.New()

		f.hackathons.On("GetByID", ctx, hackathon.ID).Return(hackathon, nil)
		f.teams.On("GetByID", ctx, team.ID).Return(team, nil)
		f.winners.On("Create", ctx, mock.MatchedBy(func(ws *model.WinnerSolution) bool {
			return ws.CanShare && ws.HackathonID == hackathon.ID && ws.TeamID == team.ID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.WinnerSolution).ID = solutionID
		}).Return(nil)

		id, err := f.service.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, solutionID, id)
		f.winners.AssertExpectations(t)
	})

	t.Run("explicit share flag is kept", func(t *testing.T) {
		f := newWinnerFixture()
		no := false
		in := input
		in.CanShare = &no

		f.hackathons.On("GetByID", ctx, hackathon.ID).Return(hackathon, nil)
		f.teams.On("GetByID", ctx, team.ID).Return(team, nil)
		f.winners.On("Create", ctx, mock.MatchedBy(func(ws *model.WinnerSolution) bool {
			return !ws.CanShare
		})).Return(nil)

		_, err := f.service.Create(ctx, in)
		require.NoError(t, err)
	})

	t.Run("second solution for the same pair conflicts", func(t *testing.T) {
		f := newWinnerFixture()

		f.hackathons.On("GetByID", ctx, hackathon.ID).Return(hackathon, nil)
		f.teams.On("GetByID", ctx, team.ID).Return(team, nil)
		f.winners.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.winners.On("Create", ctx, mock.Anything).Return(domainErrors.ErrWinnerSolutionExists).Once()

		_, err := f.service.Create(ctx, input)
		require.NoError(t, err)

		_, err = f.service.Create(ctx, input)
		assert.ErrorIs(t, err, domainErrors.ErrWinnerSolutionExists)
		assert.Equal(t, "solution already exists for team", err.Error())
	})

	t.Run("unknown hackathon", func(t *testing.T) {
		f := newWinnerFixture()

		f.hackathons.On("GetByID", ctx, hackathon.ID).Return(nil, domainErrors.ErrHackathonNotFound)

		_, err := f.service.Create(ctx, input)
		assert.ErrorIs(t, err, domainErrors.ErrHackathonNotFound)
		f.winners.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown team", func(t *testing.T) {
		f := newWinnerFixture()

		f.hackathons.On("GetByID", ctx, hackathon.ID).Return(hackathon, nil)
		f.teams.On("GetByID", ctx, team.ID).Return(nil, domainErrors.ErrTeamNotFound)

		_, err := f.service.Create(ctx, input)
		assert.ErrorIs(t, err, domainErrors.ErrTeamNotFound)
	})

	t.Run("negative prize is rejected", func(t *testing.T) {
		f := newWinnerFixture()
		in := input
		in.WinMoney = decimal.NewFromInt(-10)

		_, err := f.service.Create(ctx, in)
		assert.Error(t, err)
		f.hackathons.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestWinnerSolutionService_ListByHackathon(t *testing.T) {
	ctx := context.Background()
	hackathonID := uuid.New()

	t.Run("unknown hackathon", func(t *testing.T) {
		f := newWinnerFixture()
		f.hackathons.On("GetByID", ctx, hackathonID).Return(nil, domainErrors.ErrHackathonNotFound)

		_, err := f.service.ListByHackathon(ctx, hackathonID)
		assert.ErrorIs(t, err, domainErrors.ErrHackathonNotFound)
	})

	t.Run("returns the repository order", func(t *testing.T) {
		f := newWinnerFixture()
		solutions := []*model.WinnerSolution{
			{ID: uuid.New(), WinMoney: decimal.NewFromInt(1000)},
			{ID: uuid.New(), WinMoney: decimal.NewFromInt(500)},
		}
		f.hackathons.On("GetByID", ctx, hackathonID).Return(&model.Hackathon{ID: hackathonID}, nil)
		f.winners.On("ListByHackathon", ctx, hackathonID).Return(solutions, nil)

		result, err := f.service.ListByHackathon(ctx, hackathonID)
		require.NoError(t, err)
		assert.Equal(t, solutions, result)
	})
}
