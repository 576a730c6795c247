package videos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
)

// Repository persists videos. The embedded soft-delete repo covers the plain
// lifecycle; the methods here add reference preloading for the listing.
type Repository struct {
	*repo.SoftDelete[models.Video]
	base repo.Base
}

// NewRepository binds the repository to a gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		SoftDelete: repo.NewSoftDelete[models.Video](db, "is_deleted"),
		base:       repo.NewBase(db),
	}
}

// ListLiveWithRefs returns live videos newest first with their optional
// sound, uploader, and discovery section preloaded. Dead referents are
// preloaded too; the projection decides what to show.
func (r *Repository) ListLiveWithRefs(ctx context.Context) ([]models.Video, error) {
	var rows []models.Video
	err := r.base.DB(ctx).
		Model(&models.Video{}).
		Preload("Sound").
		Preload("AppUser").
		Preload("DiscoverySection").
		Where("NOT is_deleted").
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDWithRefs resolves one video by id with references preloaded,
// soft-deleted rows included.
func (r *Repository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	var row models.Video
	err := r.base.DB(ctx).
		Model(&models.Video{}).
		Preload("Sound").
		Preload("AppUser").
		Preload("DiscoverySection").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
