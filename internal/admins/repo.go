package admins

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
)

// Repository exposes admin persistence operations.
type Repository struct {
	base repo.Base
}

// NewRepository constructs an admin repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// FindByEmail resolves an admin by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.base.DB(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByID resolves an admin by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.base.DB(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// List returns every admin except the excluded one, oldest first.
func (r *Repository) List(ctx context.Context, excludeID uuid.UUID) ([]models.Admin, error) {
	var rows []models.Admin
	query := r.base.DB(ctx).Model(&models.Admin{})
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new admin row.
func (r *Repository) Create(ctx context.Context, admin *models.Admin) error {
	return r.base.DB(ctx).Create(admin).Error
}

// Updates applies the column map to the admin with the given id.
func (r *Repository) Updates(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := r.base.DB(ctx).Model(&models.Admin{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string, actor uuid.UUID) error {
	return r.Updates(ctx, id, map[string]any{
		"password_hash": hash,
		"updated_by":    actor,
	})
}
