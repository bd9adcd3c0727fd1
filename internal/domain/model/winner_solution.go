package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WinnerSolution records a team's winning entry; at most one per (hackathon, team).
type WinnerSolution struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HackathonID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_winner_solution_hackathon_team,priority:1" json:"hackathon_id"`
	TeamID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_winner_solution_hackathon_team,priority:2;index" json:"team_id"`
	WinMoney           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"win_money"`
	LinkToSolution     string          `gorm:"type:text;not null" json:"link_to_solution"`
	LinkToPresentation string          `gorm:"type:text;not null" json:"link_to_presentation"`
	CanShare           bool            `gorm:"not null" json:"can_share"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`

	// Relations
	Hackathon *Hackathon `gorm:"foreignKey:HackathonID" json:"-"`
	Team      *Team      `gorm:"foreignKey:TeamID" json:"-"`
}

// TableName specifies the table name for GORM
func (WinnerSolution) TableName() string {
	return "winner_solution"
}
