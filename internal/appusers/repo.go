package appusers

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
)

// Repository exposes end-user persistence operations. Blocking reuses the
// shared soft-delete machinery with is_blocked as the flag column.
type Repository struct {
	*repo.SoftDelete[models.AppUser]
	base repo.Base
}

// NewRepository constructs a user repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		SoftDelete: repo.NewSoftDelete[models.AppUser](db, "is_blocked"),
		base:       repo.NewBase(db),
	}
}

// Search matches the query against username and display name,
// case-insensitively, newest first.
func (r *Repository) Search(ctx context.Context, query string, limit int) ([]models.AppUser, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var rows []models.AppUser
	err := r.base.DB(ctx).
		Model(&models.AppUser{}).
		Where("LOWER(username) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
