package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

type HackathonUsecase interface {
	Upsert(ctx context.Context, in usecase.HackathonInput) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error)
	ListAll(ctx context.Context) ([]*model.Hackathon, error)
}

type HackathonHandler struct {
	hackathonService HackathonUsecase
	logger           *zap.Logger
}

func NewHackathonHandler(hackathonService HackathonUsecase, logger *zap.Logger) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
		logger:           logger,
	}
}

type upsertHackathonRequest struct {
	Name                string          `json:"name" validate:"required,max=200"`
	TaskDescription     string          `json:"task_description"`
	StartOfRegistration time.Time       `json:"start_of_registration" validate:"required"`
	EndOfRegistration   time.Time       `json:"end_of_registration" validate:"required"`
	StartOfHack         time.Time       `json:"start_of_hack" validate:"required"`
	EndOfHack           time.Time       `json:"end_of_hack" validate:"required"`
	AmountMoney         decimal.Decimal `json:"amount_money"`
	Type                string          `json:"type" validate:"required"`
}

// List handles GET /hackathon
func (h *HackathonHandler) List(c echo.Context) error {
	hackathons, err := h.hackathonService.ListAll(c.Request().Context())
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to list hackathons")
		return err
	}

	result := make([]hackathonResponse, 0, len(hackathons))
	for _, hackathon := range hackathons {
		result = append(result, toHackathonResponse(hackathon))
	}
	return c.JSON(http.StatusOK, echo.Map{"hackathons": result})
}

// Upsert handles POST /hackathon
func (h *HackathonHandler) Upsert(c echo.Context) error {
	var req upsertHackathonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.hackathonService.Upsert(c.Request().Context(), usecase.HackathonInput{
		Name:                req.Name,
		TaskDescription:     req.TaskDescription,
		StartOfRegistration: req.StartOfRegistration,
		EndOfRegistration:   req.EndOfRegistration,
		StartOfHack:         req.StartOfHack,
		EndOfHack:           req.EndOfHack,
		AmountMoney:         req.AmountMoney,
		Type:                req.Type,
	})
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to upsert hackathon", zap.String("name", req.Name))
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Get handles GET /hackathon/:id
func (h *HackathonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	hackathon, err := h.hackathonService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHackathonResponse(hackathon))
}
