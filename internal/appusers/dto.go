package appusers

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
)

// UserDTO is the panel-facing shape of an end user.
type UserDTO struct {
	ID        uuid.UUID    `json:"id"`
	UserID    string       `json:"user_id"`
	Username  string       `json:"username"`
	Name      string       `json:"name"`
	Device    enums.Device `json:"device"`
	IsBlocked bool         `json:"is_blocked"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// FromModel converts a persisted user into its DTO.
func FromModel(user *models.AppUser) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:        user.ID,
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		Device:    user.Device,
		IsBlocked: user.IsBlocked,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// SaveUserInput carries the fields accepted when creating or editing an end
// user. A nil ID means create.
type SaveUserInput struct {
	ID       *uuid.UUID
	Username string
	Name     string
	Device   enums.Device
}
