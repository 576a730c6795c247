package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/db/models"
)

// SectionDTO is the panel-facing shape of a discovery or sound section.
type SectionDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LanguageDTO is the panel-facing shape of a sound language.
type LanguageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func discoveryToDTO(row *models.DiscoverySection) *SectionDTO {
	if row == nil {
		return nil
	}
	return &SectionDTO{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
}

func soundSectionToDTO(row *models.SoundSection) *SectionDTO {
	if row == nil {
		return nil
	}
	return &SectionDTO{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
}

func languageToDTO(row *models.SoundLanguage) *LanguageDTO {
	if row == nil {
		return nil
	}
	return &LanguageDTO{ID: row.ID, Name: row.Name, Code: row.Code, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
}

// SaveSectionInput names a section to create or update. A nil ID means create.
type SaveSectionInput struct {
	ID   *uuid.UUID
	Name string
}

// SaveLanguageInput names a language to create or update. A nil ID means create.
type SaveLanguageInput struct {
	ID   *uuid.UUID
	Name string
	Code string
}
