package models

import (
	"time"

	"github.com/google/uuid"
)

// DiscoverySection is a curated bucket on the app's discovery tab.
type DiscoverySection struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `gorm:"column:name;type:text;not null"`
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// RefID implements projection.Referent.
func (s DiscoverySection) RefID() uuid.UUID { return s.ID }

// DisplayName implements projection.Referent.
func (s DiscoverySection) DisplayName() string { return s.Name }

// IsLive implements projection.Referent.
func (s DiscoverySection) IsLive() bool { return !s.IsDeleted }

// SoundSection groups sounds for browsing.
type SoundSection struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `gorm:"column:name;type:text;not null"`
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// RefID implements projection.Referent.
func (s SoundSection) RefID() uuid.UUID { return s.ID }

// DisplayName implements projection.Referent.
func (s SoundSection) DisplayName() string { return s.Name }

// IsLive implements projection.Referent.
func (s SoundSection) IsLive() bool { return !s.IsDeleted }

// SoundLanguage tags sounds with the language they are sung/spoken in.
type SoundLanguage struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `gorm:"column:name;type:text;not null"`
	Code      string     `gorm:"column:code;type:text;not null"`
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// RefID implements projection.Referent.
func (l SoundLanguage) RefID() uuid.UUID { return l.ID }

// DisplayName implements projection.Referent.
func (l SoundLanguage) DisplayName() string { return l.Name }

// IsLive implements projection.Referent.
func (l SoundLanguage) IsLive() bool { return !l.IsDeleted }
