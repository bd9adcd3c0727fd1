package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

type WinnerSolutionUsecase interface {
	Create(ctx context.Context, in usecase.WinnerSolutionInput) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.WinnerSolution, error)
	ListAll(ctx context.Context) ([]*model.WinnerSolution, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*model.WinnerSolution, error)
}

type WinnerSolutionHandler struct {
	winnerService WinnerSolutionUsecase
	logger        *zap.Logger
}

func NewWinnerSolutionHandler(winnerService WinnerSolutionUsecase, logger *zap.Logger) *WinnerSolutionHandler {
	return &WinnerSolutionHandler{
		winnerService: winnerService,
		logger:        logger,
	}
}

type createWinnerSolutionRequest struct {
	HackathonID        uuid.UUID       `json:"hackathon_id" validate:"required"`
	TeamID             uuid.UUID       `json:"team_id" validate:"required"`
	WinMoney           decimal.Decimal `json:"win_money"`
	LinkToSolution     string          `json:"link_to_solution" validate:"required,url"`
	LinkToPresentation string          `json:"link_to_presentation" validate:"required,url"`
	CanShare           *bool           `json:"can_share"`
}

// List handles GET /winner-solution
func (h *WinnerSolutionHandler) List(c echo.Context) error {
	solutions, err := h.winnerService.ListAll(c.Request().Context())
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to list winner solutions")
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"winner_solutions": toWinnerSolutionResponses(solutions)})
}

// Create handles POST /winner-solution
func (h *WinnerSolutionHandler) Create(c echo.Context) error {
	var req createWinnerSolutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.winnerService.Create(c.Request().Context(), usecase.WinnerSolutionInput{
		HackathonID:        req.HackathonID,
		TeamID:             req.TeamID,
		WinMoney:           req.WinMoney,
		LinkToSolution:     req.LinkToSolution,
		LinkToPresentation: req.LinkToPresentation,
		CanShare:           req.CanShare,
	})
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to create winner solution",
			zap.String("hackathon_id", req.HackathonID.String()),
			zap.String("team_id", req.TeamID.String()))
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Get handles GET /winner-solution/:id
func (h *WinnerSolutionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	solution, err := h.winnerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWinnerSolutionResponse(solution))
}

// ListByHackathon handles GET /hackathon/:id/winner-solutions
func (h *WinnerSolutionHandler) ListByHackathon(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	solutions, err := h.winnerService.ListByHackathon(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"winner_solutions": toWinnerSolutionResponses(solutions)})
}
