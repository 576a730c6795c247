package videos

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/internal/media"
)

// VideoDTO is the listing row for a video. Names of soft-deleted or blocked
// referents come back empty while the ids stay filled, so the edit form can
// still show what the video pointed at.
type VideoDTO struct {
	ID                   uuid.UUID  `json:"id"`
	VideoURL             string     `json:"video_url"`
	SoundID              *uuid.UUID `json:"sound_id"`
	SoundName            string     `json:"sound_name"`
	AppUserID            *uuid.UUID `json:"app_user_id"`
	Username             string     `json:"username"`
	DiscoverySectionID   *uuid.UUID `json:"discovery_section_id"`
	DiscoverySectionName string     `json:"discovery_section_name"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// SaveVideoInput carries the fields accepted when creating or editing a
// video. A nil ID means create; a nil Upload on update keeps the stored
// file. Nil references clear the corresponding link.
type SaveVideoInput struct {
	ID                 *uuid.UUID
	SoundID            *uuid.UUID
	AppUserID          *uuid.UUID
	DiscoverySectionID *uuid.UUID
	Upload             *media.Upload
}
