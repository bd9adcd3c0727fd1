package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/domain/model"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

type TeamUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string, maxSize int) (uuid.UUID, error)
	AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	ListAll(ctx context.Context) ([]*model.Team, error)
	ListByMember(ctx context.Context, hackerID uuid.UUID) ([]*model.Team, error)
}

// HackerLookup resolves the caller's hacker
type HackerLookup interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error)
}

type TeamHandler struct {
	teamService TeamUsecase
	hackers     HackerLookup
	logger      *zap.Logger
}

func NewTeamHandler(teamService TeamUsecase, hackers HackerLookup, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		hackers:     hackers,
		logger:      logger,
	}
}

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	MaxSize int    `json:"max_size"`
}

type addMemberRequest struct {
	HackerID uuid.UUID `json:"hacker_id" validate:"required"`
}

func (h *TeamHandler) callerHacker(c echo.Context) (*model.Hacker, error) {
	userID, err := caller(c)
	if err != nil {
		return nil, err
	}
	return h.hackers.GetByUserID(c.Request().Context(), userID)
}

// List handles GET /team
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teamService.ListAll(c.Request().Context())
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to list teams")
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"teams": toTeamResponses(teams)})
}

// Create handles POST /team; the caller's hacker becomes the owner
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	owner, err := h.callerHacker(c)
	if err != nil {
		return err
	}

	id, err := h.teamService.Create(c.Request().Context(), owner.ID, req.Name, req.MaxSize)
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to create team",
			zap.String("owner_id", owner.ID.String()),
			zap.String("name", req.Name))
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Mine handles GET /team/my
func (h *TeamHandler) Mine(c echo.Context) error {
	hacker, err := h.callerHacker(c)
	if err != nil {
		return err
	}

	teams, err := h.teamService.ListByMember(c.Request().Context(), hacker.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"teams": toTeamResponses(teams)})
}

// Get handles GET /team/:id
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	team, err := h.teamService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTeamResponse(team))
}

// AddMember handles POST /team/:id/members. The owner may add anyone;
// other callers may only add themselves.
func (h *TeamHandler) AddMember(c echo.Context) error {
	teamID, err := pathID(c)
	if err != nil {
		return err
	}

	var req addMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	self, err := h.callerHacker(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if self.ID != req.HackerID {
		team, err := h.teamService.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team.OwnerID != self.ID {
			return apperrors.Unauthorized("only the team owner can add other hackers")
		}
	}

	if err := h.teamService.AddMember(ctx, teamID, req.HackerID); err != nil {
		apperrors.LogError(h.logger, err, "Failed to add team member",
			zap.String("team_id", teamID.String()),
			zap.String("hacker_id", req.HackerID.String()))
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
