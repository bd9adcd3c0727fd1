package model

import "github.com/google/uuid"

// Association rows carry only foreign-key pairs. They are written by the
// operation that owns the relationship and never exposed through the API.

// HackerRole links a hacker to a role
type HackerRole struct {
	HackerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the table name for GORM
func (HackerRole) TableName() string {
	return "hacker_role_association"
}

// HackerTeam links a hacker to a team
type HackerTeam struct {
	HackerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the table name for GORM
func (HackerTeam) TableName() string {
	return "hacker_team_association"
}

// WinnerSolutionTeamHackathon records the (winner solution, team, hackathon) triple
type WinnerSolutionTeamHackathon struct {
	WinnerSolutionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	HackathonID      uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the table name for GORM
func (WinnerSolutionTeamHackathon) TableName() string {
	return "winner_solution_team_hackathon_association"
}
