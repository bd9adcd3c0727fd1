// Package errors holds the domain error values returned by repositories and
// services. Each one carries a pkg/errors code, so handlers map them to HTTP
// statuses without knowing the individual cases. Match them with errors.Is.
package errors

import (
	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

var (
	ErrHackerNotFound         = apperrors.NotFound("hacker not found")
	ErrRoleNotFound           = apperrors.NotFound("role not found")
	ErrTeamNotFound           = apperrors.NotFound("team not found")
	ErrHackathonNotFound      = apperrors.NotFound("hackathon not found")
	ErrWinnerSolutionNotFound = apperrors.NotFound("winner solution not found")
)

var (
	// ErrInvalidTeamSize is returned when a team is created with max size <= 0
	ErrInvalidTeamSize = apperrors.InvalidArgument("team max size must be positive")

	// ErrDuplicateTeam indicates the owner already has a team with that name
	ErrDuplicateTeam = apperrors.Conflict("owner already has a team with this name")

	// ErrTeamFull indicates the team already has max size members
	ErrTeamFull = apperrors.Conflict("team is full")

	// ErrAlreadyMember indicates the hacker is already in the team
	ErrAlreadyMember = apperrors.Conflict("hacker is already a member of the team")

	// ErrWinnerSolutionExists indicates the team already has a solution for the hackathon
	ErrWinnerSolutionExists = apperrors.Conflict("solution already exists for team")

	// ErrInvalidHackathonWindow indicates registration and hack windows are out of order
	ErrInvalidHackathonWindow = apperrors.InvalidArgument("hackathon windows are out of order")
)

// NewInvalidInputError reports a rejected field value.
func NewInvalidInputError(field, reason string) error {
	return apperrors.InvalidArgument(field + ": " + reason)
}
