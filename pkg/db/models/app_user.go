package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/enums"
)

// AppUser is an end user of the mobile app. Blocking is the soft-delete
// analog: blocked users drop out of listings but stay addressable by id so
// historical joins keep working.
type AppUser struct {
	ID        uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    string       `gorm:"column:user_id;type:text;not null;uniqueIndex"`
	Username  string       `gorm:"column:username;type:text;not null"`
	Name      string       `gorm:"column:name;not null"`
	Device    enums.Device `gorm:"column:device;type:text;not null"`
	IsBlocked bool         `gorm:"column:is_blocked;not null;default:false"`
	CreatedBy *uuid.UUID   `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID   `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// RefID implements projection.Referent.
func (u AppUser) RefID() uuid.UUID { return u.ID }

// DisplayName implements projection.Referent.
func (u AppUser) DisplayName() string { return u.Username }

// IsLive implements projection.Referent.
func (u AppUser) IsLive() bool { return !u.IsBlocked }
