package sounds

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
)

// Repository exposes sound persistence, including the section and language
// assignments stored in the join tables.
type Repository struct {
	*repo.SoftDelete[models.Sound]
	base repo.Base
}

// NewRepository constructs a sound repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		SoftDelete: repo.NewSoftDelete[models.Sound](db, "is_deleted"),
		base:       repo.NewBase(db),
	}
}

// ListLiveWithRefs returns live sounds newest first, assignments preloaded.
func (r *Repository) ListLiveWithRefs(ctx context.Context) ([]models.Sound, error) {
	var rows []models.Sound
	err := r.base.DB(ctx).
		Model(&models.Sound{}).
		Preload("Sections").
		Preload("Languages").
		Where("NOT is_deleted").
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDWithRefs resolves one sound with assignments preloaded, dead rows
// included.
func (r *Repository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*models.Sound, error) {
	var row models.Sound
	err := r.base.DB(ctx).
		Preload("Sections").
		Preload("Languages").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateWithRefs inserts the sound row and its join rows. Association targets
// must already exist.
func (r *Repository) CreateWithRefs(ctx context.Context, sound *models.Sound) error {
	db := r.base.DB(ctx)
	sections := sound.Sections
	languages := sound.Languages
	sound.Sections = nil
	sound.Languages = nil

	if err := db.Omit(clause.Associations).Create(sound).Error; err != nil {
		return err
	}
	if err := db.Model(sound).Association("Sections").Replace(sections); err != nil {
		return err
	}
	if err := db.Model(sound).Association("Languages").Replace(languages); err != nil {
		return err
	}
	sound.Sections = sections
	sound.Languages = languages
	return nil
}

// ReplaceRefs swaps the sound's section and language assignments.
func (r *Repository) ReplaceRefs(ctx context.Context, sound *models.Sound, sections []models.SoundSection, languages []models.SoundLanguage) error {
	db := r.base.DB(ctx)
	if err := db.Model(sound).Association("Sections").Replace(sections); err != nil {
		return err
	}
	if err := db.Model(sound).Association("Languages").Replace(languages); err != nil {
		return err
	}
	return nil
}

// Search matches the query against sound names, newest first, live only.
func (r *Repository) Search(ctx context.Context, query string, limit int) ([]models.Sound, error) {
	var rows []models.Sound
	err := r.base.DB(ctx).
		Model(&models.Sound{}).
		Preload("Sections").
		Preload("Languages").
		Where("NOT is_deleted").
		Where("LOWER(name) LIKE ?", "%"+query+"%").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
