package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/usecase"
)

type idResponse struct {
	ID uuid.UUID `json:"id"`
}

type hackerResponse struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Name      string      `json:"name"`
	Roles     []string    `json:"roles"`
	TeamIDs   []uuid.UUID `json:"team_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toHackerResponse(h *model.Hacker) hackerResponse {
	return hackerResponse{
		ID:        h.ID,
		UserID:    h.UserID,
		Name:      h.Name,
		Roles:     h.RoleNames(),
		TeamIDs:   h.TeamIDs(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type roleResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toRoleResponses(roles []*model.Role) []roleResponse {
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleResponse{ID: r.ID, Name: string(r.Name)})
	}
	return out
}

type roleAssignmentResponse struct {
	Roles            []roleResponse `json:"roles"`
	DroppedRoleIDs   []uuid.UUID    `json:"dropped_role_ids,omitempty"`
	DroppedRoleNames []string       `json:"dropped_role_names,omitempty"`
}

func toRoleAssignmentResponse(a *usecase.RoleAssignment) roleAssignmentResponse {
	return roleAssignmentResponse{
		Roles:            toRoleResponses(a.Roles),
		DroppedRoleIDs:   a.DroppedIDs,
		DroppedRoleNames: a.DroppedNames,
	}
}

type teamResponse struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Name      string      `json:"name"`
	MaxSize   int         `json:"max_size"`
	HackerIDs []uuid.UUID `json:"hacker_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toTeamResponse(t *model.Team) teamResponse {
	return teamResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		MaxSize:   t.MaxSize,
		HackerIDs: t.MemberIDs(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTeamResponses(teams []*model.Team) []teamResponse {
	out := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamResponse(t))
	}
	return out
}

type hackathonResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	TaskDescription     string          `json:"task_description"`
	StartOfRegistration time.Time       `json:"start_of_registration"`
	EndOfRegistration   time.Time       `json:"end_of_registration"`
	StartOfHack         time.Time       `json:"start_of_hack"`
	EndOfHack           time.Time       `json:"end_of_hack"`
	AmountMoney         decimal.Decimal `json:"amount_money"`
	Type                string          `json:"type"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func toHackathonResponse(h *model.Hackathon) hackathonResponse {
	return hackathonResponse{
		ID:                  h.ID,
		Name:                h.Name,
		TaskDescription:     h.TaskDescription,
		StartOfRegistration: h.StartOfRegistration,
		EndOfRegistration:   h.EndOfRegistration,
		StartOfHack:         h.StartOfHack,
		EndOfHack:           h.EndOfHack,
		AmountMoney:         h.AmountMoney,
		Type:                h.Type,
		CreatedAt:           h.CreatedAt,
		UpdatedAt:           h.UpdatedAt,
	}
}

type winnerSolutionResponse struct {
	ID                 uuid.UUID       `json:"id"`
	HackathonID        uuid.UUID       `json:"hackathon_id"`
	TeamID             uuid.UUID       `json:"team_id"`
	WinMoney           decimal.Decimal `json:"win_money"`
	LinkToSolution     string          `json:"link_to_solution"`
	LinkToPresentation string          `json:"link_to_presentation"`
	CanShare           bool            `json:"can_share"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func toWinnerSolutionResponse(ws *model.WinnerSolution) winnerSolutionResponse {
	return winnerSolutionResponse{
		ID:                 ws.ID,
		HackathonID:        ws.HackathonID,
		TeamID:             ws.TeamID,
		WinMoney:           ws.WinMoney,
		LinkToSolution:     ws.LinkToSolution,
		LinkToPresentation: ws.LinkToPresentation,
		CanShare:           ws.CanShare,
		CreatedAt:          ws.CreatedAt,
		UpdatedAt:          ws.UpdatedAt,
	}
}

func toWinnerSolutionResponses(solutions []*model.WinnerSolution) []winnerSolutionResponse {
	out := make([]winnerSolutionResponse, 0, len(solutions))
	for _, ws := range solutions {
		out = append(out, toWinnerSolutionResponse(ws))
	}
	return out
}
