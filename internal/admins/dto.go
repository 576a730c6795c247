package admins

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
)

// AdminDTO is the panel-facing shape of an admin account. The password hash
// never leaves the service layer.
type AdminDTO struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      enums.AdminRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FromModel converts a persisted admin into its DTO.
func FromModel(admin *models.Admin) *AdminDTO {
	if admin == nil {
		return nil
	}
	return &AdminDTO{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// SaveAdminInput carries the fields accepted when creating or editing an
// admin. A nil ID means create.
type SaveAdminInput struct {
	ID        *uuid.UUID
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      enums.AdminRole
}
