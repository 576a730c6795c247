package verifications

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
)

// Repository persists identity submissions. Submissions are append-only;
// decisions update the status in place.
type Repository struct {
	base repo.Base
}

// NewRepository binds the repository to a gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// ListNewestFirst returns every submission ordered newest first. Equal
// timestamps fall back to id order so the pick per user stays stable.
func (r *Repository) ListNewestFirst(ctx context.Context) ([]models.ProfileVerification, error) {
	var rows []models.ProfileVerification
	err := r.base.DB(ctx).
		Model(&models.ProfileVerification{}).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create stores a new submission.
func (r *Repository) Create(ctx context.Context, row *models.ProfileVerification) error {
	return r.base.DB(ctx).Create(row).Error
}

// FindByID resolves one submission.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProfileVerification, error) {
	var row models.ProfileVerification
	err := r.base.DB(ctx).
		Model(&models.ProfileVerification{}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus stamps the review decision on a submission.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.VerificationStatus, actor uuid.UUID) error {
	result := r.base.DB(ctx).
		Model(&models.ProfileVerification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_by": actor,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
