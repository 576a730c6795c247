package sounds

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/internal/media"
)

// SoundDTO is the panel-facing projection of a sound: assignment ids for the
// edit form, joined live names for the table, and a short-lived playback URL.
type SoundDTO struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	SectionIDs    []uuid.UUID `json:"section_ids"`
	SectionNames  string      `json:"section_names"`
	LanguageIDs   []uuid.UUID `json:"language_ids"`
	LanguageNames string      `json:"language_names"`
	SoundURL      string      `json:"sound_url"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SaveSoundInput carries the fields accepted when creating or editing a
// sound. A nil ID means create; a nil Upload on update keeps the stored file.
type SaveSoundInput struct {
	ID          *uuid.UUID
	Name        string
	SectionIDs  []uuid.UUID
	LanguageIDs []uuid.UUID
	Upload      *media.Upload
}
