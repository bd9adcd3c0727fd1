package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hackathon is keyed for upserts by (Name, StartOfHack).
type Hackathon struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                string          `gorm:"type:text;not null;uniqueIndex:idx_hackathon_name_start,priority:1" json:"name"`
	TaskDescription     string          `gorm:"type:text;not null;default:''" json:"task_description"`
	StartOfRegistration time.Time       `gorm:"not null" json:"start_of_registration"`
	EndOfRegistration   time.Time       `gorm:"not null" json:"end_of_registration"`
	StartOfHack         time.Time       `gorm:"not null;uniqueIndex:idx_hackathon_name_start,priority:2" json:"start_of_hack"`
	EndOfHack           time.Time       `gorm:"not null" json:"end_of_hack"`
	AmountMoney         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_money"`
	Type                string          `gorm:"type:text;not null" json:"type"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Hackathon) TableName() string {
	return "hackathon"
}

// HackathonMutableColumns are overwritten when an upsert hits an existing row.
var HackathonMutableColumns = []string{
	"task_description",
	"start_of_registration",
	"end_of_registration",
	"end_of_hack",
	"amount_money",
	"type",
	"updated_at",
}
