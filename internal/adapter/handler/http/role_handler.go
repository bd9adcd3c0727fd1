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

type RoleUsecase interface {
	ListAll(ctx context.Context) ([]*model.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

type RoleHandler struct {
	roleService RoleUsecase
	logger      *zap.Logger
}

func NewRoleHandler(roleService RoleUsecase, logger *zap.Logger) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		logger:      logger,
	}
}

// List handles GET /role
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.ListAll(c.Request().Context())
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to list roles")
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"roles": toRoleResponses(roles)})
}

// Get handles GET /role/:id
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	role, err := h.roleService.GetByID(c.Request().Context(), id)
	if err != nil {
		apperrors.LogError(h.logger, err, "Failed to get role", zap.String("role_id", id.String()))
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{ID: role.ID, Name: string(role.Name)})
}
