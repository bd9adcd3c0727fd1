package http_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "github.com/rdinit/hackathonService/internal/adapter/handler/http"
	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/middleware/auth"
)

func TestTeamHandler_Create(t *testing.T) {
	user := &auth.AuthUser{UserID: uuid.New()}
	owner := &model.Hacker{ID: uuid.New(), UserID: user.UserID}
	teamID := uuid.New()

	t.Run("caller owns the team", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).Create)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(owner, nil)
		teams.On("Create", mock.Anything, owner.ID, "Rockets", 4).Return(teamID, nil)

		rec := serve(e, http.MethodPost, "/team", `{"name":"Rockets","max_size":4}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), teamID.String())
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).Create)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(owner, nil)
		teams.On("Create", mock.Anything, owner.ID, "Rockets", 4).Return(uuid.Nil, domainErrors.ErrDuplicateTeam)

		rec := serve(e, http.MethodPost, "/team", `{"name":"Rockets","max_size":4}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("zero size", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).Create)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(owner, nil)
		teams.On("Create", mock.Anything, owner.ID, "Rockets", 0).Return(uuid.Nil, domainErrors.ErrInvalidTeamSize)

		rec := serve(e, http.MethodPost, "/team", `{"name":"Rockets","max_size":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "team max size must be positive")
	})

	t.Run("caller without hacker profile", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).Create)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(nil, domainErrors.ErrHackerNotFound)

		rec := serve(e, http.MethodPost, "/team", `{"name":"Rockets","max_size":4}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTeamHandler_AddMember(t *testing.T) {
	user := &auth.AuthUser{UserID: uuid.New()}
	self := &model.Hacker{ID: uuid.New(), UserID: user.UserID}
	team := &model.Team{ID: uuid.New(), OwnerID: uuid.New(), MaxSize: 2}
	path := "/team/" + team.ID.String() + "/members"

	t.Run("self join", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team/:id/members", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).AddMember)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(self, nil)
		teams.On("AddMember", mock.Anything, team.ID, self.ID).Return(nil)

		rec := serve(e, http.MethodPost, path, `{"hacker_id":"`+self.ID.String()+`"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("full team", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team/:id/members", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).AddMember)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(self, nil)
		teams.On("AddMember", mock.Anything, team.ID, self.ID).Return(domainErrors.ErrTeamFull)

		rec := serve(e, http.MethodPost, path, `{"hacker_id":"`+self.ID.String()+`"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"team is full","code":"CONFLICT"}`, rec.Body.String())
	})

	t.Run("owner adds someone else", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team/:id/members", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).AddMember)

		owned := &model.Team{ID: team.ID, OwnerID: self.ID, MaxSize: 3}
		other := uuid.New()
		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(self, nil)
		teams.On("GetByID", mock.Anything, team.ID).Return(owned, nil)
		teams.On("AddMember", mock.Anything, team.ID, other).Return(nil)

		rec := serve(e, http.MethodPost, path, `{"hacker_id":"`+other.String()+`"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non owner cannot add others", func(t *testing.T) {
		teams := new(MockTeamUsecase)
		hackers := new(MockHackerUsecase)
		e := newTestEcho(user)
		e.POST("/team/:id/members", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).AddMember)

		hackers.On("GetByUserID", mock.Anything, user.UserID).Return(self, nil)
		teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)

		rec := serve(e, http.MethodPost, path, `{"hacker_id":"`+uuid.NewString()+`"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		teams.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("hacker_id is required", func(t *testing.T) {
		e := newTestEcho(user)
		e.POST("/team/:id/members", handlers.NewTeamHandler(new(MockTeamUsecase), new(MockHackerUsecase), zap.NewNop()).AddMember)

		rec := serve(e, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "hacker_id: is required")
	})
}

func TestTeamHandler_Mine(t *testing.T) {
	user := &auth.AuthUser{UserID: uuid.New()}
	self := &model.Hacker{ID: uuid.New(), UserID: user.UserID}
	teams := new(MockTeamUsecase)
	hackers := new(MockHackerUsecase)
	e := newTestEcho(user)
	e.GET("/team/my", handlers.NewTeamHandler(teams, hackers, zap.NewNop()).Mine)

	member := model.Hacker{ID: self.ID}
	hackers.On("GetByUserID", mock.Anything, user.UserID).Return(self, nil)
	teams.On("ListByMember", mock.Anything, self.ID).Return([]*model.Team{
		{ID: uuid.New(), Name: "Rockets", MaxSize: 3, Members: []model.Hacker{member}},
	}, nil)

	rec := serve(e, http.MethodGet, "/team/my", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hacker_ids":["`+self.ID.String()+`"]`)
}
