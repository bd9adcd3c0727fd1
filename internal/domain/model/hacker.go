package model

import (
	"time"

	"github.com/google/uuid"
)

// Hacker is a participant identified by an external user reference (the token uid).
type Hacker struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hacker_user_id" json:"user_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Relations
	Roles []Role `gorm:"many2many:hacker_role_association;joinForeignKey:HackerID;joinReferences:RoleID" json:"roles,omitempty"`
	Teams []Team `gorm:"many2many:hacker_team_association;joinForeignKey:HackerID;joinReferences:TeamID" json:"teams,omitempty"`
}

// TableName specifies the table name for GORM
func (Hacker) TableName() string {
	return "hacker"
}

// RoleNames returns the names of the loaded roles.
func (h *Hacker) RoleNames() []string {
	names := make([]string, 0, len(h.Roles))
	for _, r := range h.Roles {
		names = append(names, string(r.Name))
	}
	return names
}

// TeamIDs returns the ids of the loaded teams.
func (h *Hacker) TeamIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(h.Teams))
	for _, t := range h.Teams {
		ids = append(ids, t.ID)
	}
	return ids
}
