package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/enums"
)

// ProfileVerification stores one identity submission for an end user: an
// id-card scan and a selfie photo, plus the review decision. A user may
// accumulate several submissions; listings surface the newest one.
type ProfileVerification struct {
	ID        uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AppUserID uuid.UUID                `gorm:"column:app_user_id;type:uuid;not null"`
	AppUser   *AppUser                 `gorm:"foreignKey:AppUserID"`
	IDCardKey string                   `gorm:"column:id_card_key;not null"`
	PhotoKey  string                   `gorm:"column:photo_key;not null"`
	Status    enums.VerificationStatus `gorm:"column:status;type:text;not null;default:''"`
	CreatedBy *uuid.UUID               `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID               `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
