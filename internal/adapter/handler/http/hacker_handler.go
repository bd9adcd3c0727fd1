package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

// HackerUsecase is the part of the hacker service the handler calls
type HackerUsecase interface {
	Upsert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hacker, error)
	ListAll(ctx context.Context) ([]*model.Hacker, error)
	SetRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID) (*usecase.RoleAssignment, error)
	SetRolesByNames(ctx context.Context, userID uuid.UUID, names []string) (*usecase.RoleAssignment, error)
}

type HackerHandler struct {
	hackerService HackerUsecase
	logger        *zap.Logger
}

func NewHackerHandler(hackerService HackerUsecase, logger *zap.Logger) *HackerHandler {
	return &HackerHandler{
		hackerService: hackerService,
		logger:        logger,
	}
}

type upsertHackerRequest struct {
	// UserID is optional; when sent it must match the token uid
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name" validate:"required,max=200"`
}

type setRolesRequest struct {
	RoleIDs []uuid.UUID `json:"role_ids" validate:"max=32"`
}

type setRoleNamesRequest struct {
	Roles []string `json:"roles" validate:"max=32"`
}

// List handles GET /hacker
func (h *HackerHandler) List(c echo.Context) error {
	hackers, err := h.hackerService.ListAll(c.Request().Context())
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to list hackers")
		return err
	}

	result := make([]hackerResponse, 0, len(hackers))
	for _, hacker := range hackers {
		result = append(result, toHackerResponse(hacker))
	}
	return c.JSON(http.StatusOK, echo.Map{"hackers": result})
}

// Upsert handles POST /hacker
func (h *HackerHandler) Upsert(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}

	var req upsertHackerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.UserID != uuid.Nil && req.UserID != userID {
		return apperrors.Unauthorized("user_id does not match the token")
	}

	id, err := h.hackerService.Upsert(c.Request().Context(), userID, req.Name)
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to upsert hacker", zap.String("user_id", userID.String()))
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Me handles GET /hacker/me
func (h *HackerHandler) Me(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}

	hacker, err := h.hackerService.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHackerResponse(hacker))
}

// Get handles GET /hacker/:id
func (h *HackerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	hacker, err := h.hackerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHackerResponse(hacker))
}

// SetRoles handles PUT /hacker/:id/roles. Only the hacker itself may change its roles.
func (h *HackerHandler) SetRoles(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req setRolesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	self, err := h.hackerService.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if self.ID != id {
		h.logger.Warn("Rejected role change for another hacker",
			zap.String("caller_hacker_id", self.ID.String()),
			zap.String("hacker_id", id.String()))
		return apperrors.Unauthorized("cannot change roles of another hacker")
	}

	assignment, err := h.hackerService.SetRoles(ctx, id, req.RoleIDs)
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to set hacker roles", zap.String("hacker_id", id.String()))
		return err
	}
	return c.JSON(http.StatusOK, toRoleAssignmentResponse(assignment))
}

// SetMyRoles handles PUT /hacker/me/roles
func (h *HackerHandler) SetMyRoles(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}

	var req setRoleNamesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assignment, err := h.hackerService.SetRolesByNames(c.Request().Context(), userID, req.Roles)
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to set caller roles", zap.String("user_id", userID.String()))
		return err
	}
	return c.JSON(http.StatusOK, toRoleAssignmentResponse(assignment))
}
