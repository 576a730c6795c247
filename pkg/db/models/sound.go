package models

import (
	"time"

	"github.com/google/uuid"
)

// Sound is an uploaded audio asset. SoundKey locates the binary in the
// bucket and is write-once per upload: updates without a fresh file keep
// the previous key.
type Sound struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	SoundKey  string          `gorm:"column:sound_key;not null"`
	Sections  []SoundSection  `gorm:"many2many:sound_section_assignments"`
	Languages []SoundLanguage `gorm:"many2many:sound_language_assignments"`
	IsDeleted bool            `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy *uuid.UUID      `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID      `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// RefID implements projection.Referent.
func (s Sound) RefID() uuid.UUID { return s.ID }

// DisplayName implements projection.Referent.
func (s Sound) DisplayName() string { return s.Name }

// IsLive implements projection.Referent.
func (s Sound) IsLive() bool { return !s.IsDeleted }
