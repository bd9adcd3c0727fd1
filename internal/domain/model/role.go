package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoleName is one of the fixed roles a hacker can hold
type RoleName string

const (
	RoleAdmin    RoleName = "Admin"
	RoleBackend  RoleName = "Backend"
	RoleFrontend RoleName = "Frontend"
	RoleML       RoleName = "ML"
	RoleDesigner RoleName = "Designer"
	RolePM       RoleName = "PM"
	RoleQA       RoleName = "QA"
	RoleDevOps   RoleName = "DevOps"
)

var roleNames = []RoleName{
	RoleAdmin,
	RoleBackend,
	RoleFrontend,
	RoleML,
	RoleDesigner,
	RolePM,
	RoleQA,
	RoleDevOps,
}

// AllRoleNames returns the enumerated roles in seeding order.
func AllRoleNames() []RoleName {
	out := make([]RoleName, len(roleNames))
	copy(out, roleNames)
	return out
}

// IsValid reports whether n is one of the enumerated roles.
func (n RoleName) IsValid() bool {
	for _, known := range roleNames {
		if n == known {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner interface
func (n *RoleName) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*n = RoleName(v)
	case []byte:
		*n = RoleName(v)
	default:
		return fmt.Errorf("unsupported role name type %T", src)
	}
	return nil
}

// Value implements driver.Valuer interface
func (n RoleName) Value() (driver.Value, error) {
	return string(n), nil
}

// Role is seeded at startup and never created by users.
type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      RoleName  `gorm:"type:text;not null;uniqueIndex:idx_role_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Role) TableName() string {
	return "role"
}
