package model

import (
	"time"

	"github.com/google/uuid"
)

// Team is owned by a hacker and holds at most MaxSize members, owner included.
type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_owner_name,priority:1" json:"owner_id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:idx_team_owner_name,priority:2" json:"name"`
	MaxSize   int       `gorm:"not null;check:chk_team_max_size,max_size > 0" json:"max_size"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Relations
	Owner   *Hacker  `gorm:"foreignKey:OwnerID" json:"-"`
	Members []Hacker `gorm:"many2many:hacker_team_association;joinForeignKey:TeamID;joinReferences:HackerID" json:"members,omitempty"`
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "team"
}

// MemberIDs returns the ids of the loaded members.
func (t *Team) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}
