package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rdinit/hackathonService/internal/middleware/auth"
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

// pathID parses the :id route parameter
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgument("id: must be a UUID")
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.InvalidArgument("invalid request body")
	}
	return c.Validate(req)
}

// caller returns the authenticated user id
func caller(c echo.Context) (uuid.UUID, error) {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return uuid.Nil, err
	}
	return user.UserID, nil
}
