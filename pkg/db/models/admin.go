package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/pkg/enums"
)

// Admin represents a panel operator. Admins are never soft-deleted; the
// created_by/updated_by columns on every other table reference this one.
type Admin struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string          `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash string          `gorm:"column:password_hash;not null"`
	FirstName    string          `gorm:"column:first_name;not null"`
	LastName     string          `gorm:"column:last_name;not null"`
	Role         enums.AdminRole `gorm:"column:role;type:text;not null;default:'ADMIN'"`
	CreatedBy    *uuid.UUID      `gorm:"column:created_by;type:uuid"`
	UpdatedBy    *uuid.UUID      `gorm:"column:updated_by;type:uuid"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
