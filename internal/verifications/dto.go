package verifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/pkg/enums"
)

// SubmitVerificationInput carries a new identity submission. Both documents
// are required.
type SubmitVerificationInput struct {
	AppUserID *uuid.UUID
	IDCard    *media.Upload
	Photo     *media.Upload
}

// VerificationDTO is one row of the review table. Every live user appears
// exactly once; users who never submitted anything come back with a nil
// VerificationID, empty document URLs, and pending status.
type VerificationDTO struct {
	AppUserID      uuid.UUID                `json:"app_user_id"`
	Username       string                   `json:"username"`
	Name           string                   `json:"name"`
	VerificationID *uuid.UUID               `json:"verification_id"`
	IDCardURL      string                   `json:"id_card_url"`
	PhotoURL       string                   `json:"photo_url"`
	Status         enums.VerificationStatus `json:"status"`
	SubmittedAt    *time.Time               `json:"submitted_at"`
}
