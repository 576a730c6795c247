package models

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded clip, optionally tied to a sound, an end user, and
// a discovery section. All three references are nullable and resolve to
// "absent" when the target has been soft-deleted or blocked.
type Video struct {
	ID                 uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VideoKey           string            `gorm:"column:video_key;not null"`
	SoundID            *uuid.UUID        `gorm:"column:sound_id;type:uuid"`
	Sound              *Sound            `gorm:"foreignKey:SoundID"`
	AppUserID          *uuid.UUID        `gorm:"column:app_user_id;type:uuid"`
	AppUser            *AppUser          `gorm:"foreignKey:AppUserID"`
	DiscoverySectionID *uuid.UUID        `gorm:"column:discovery_section_id;type:uuid"`
	DiscoverySection   *DiscoverySection `gorm:"foreignKey:DiscoverySectionID"`
	IsDeleted          bool              `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy          *uuid.UUID        `gorm:"column:created_by;type:uuid"`
	UpdatedBy          *uuid.UUID        `gorm:"column:updated_by;type:uuid"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
