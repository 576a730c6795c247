package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoftDelete wraps the shared persistence behavior of flag-deleted entities.
// Rows are never removed; a boolean column marks them dead so historical
// references keep resolving by id.
type SoftDelete[T any] struct {
	base       Base
	flagColumn string
}

// NewSoftDelete constructs a repository for a flag-deleted model. flagColumn
// names the boolean column that marks dead rows (is_deleted, is_blocked).
func NewSoftDelete[T any](db *gorm.DB, flagColumn string) *SoftDelete[T] {
	return &SoftDelete[T]{
		base:       NewBase(db),
		flagColumn: flagColumn,
	}
}

// ListLive returns rows whose flag is unset, in the requested order.
func (r *SoftDelete[T]) ListLive(ctx context.Context, order string) ([]T, error) {
	var rows []T
	query := r.base.DB(ctx).Model(new(T)).Where(fmt.Sprintf("NOT %s", r.flagColumn))
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every row regardless of the flag, in the requested order.
func (r *SoftDelete[T]) ListAll(ctx context.Context, order string) ([]T, error) {
	var rows []T
	query := r.base.DB(ctx).Model(new(T))
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID resolves a row by primary key, dead rows included. Callers joining
// historical references rely on dead rows staying addressable.
func (r *SoftDelete[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.base.DB(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs resolves the given primary keys in one query, dead rows included.
func (r *SoftDelete[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	if err := r.base.DB(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new row. Unique violations surface as the driver error.
func (r *SoftDelete[T]) Create(ctx context.Context, row *T) error {
	return r.base.DB(ctx).Create(row).Error
}

// Updates applies the column map to the live row with the given id.
// A missing or dead row yields gorm.ErrRecordNotFound.
func (r *SoftDelete[T]) Updates(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := r.base.DB(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Where(fmt.Sprintf("NOT %s", r.flagColumn)).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkDeleted sets the flag on the live row with the given id, stamping the
// acting admin. Deleting an already-dead row is a no-op: the original
// deletion audit stays intact. A missing id yields gorm.ErrRecordNotFound.
func (r *SoftDelete[T]) MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	result := r.base.DB(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Where(fmt.Sprintf("NOT %s", r.flagColumn)).
		Updates(map[string]any{
			r.flagColumn: true,
			"updated_by": actor,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish "already deleted" from "never existed".
		var count int64
		if err := r.base.DB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// MarkRestored clears the flag on the row with the given id.
func (r *SoftDelete[T]) MarkRestored(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	result := r.base.DB(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Where(r.flagColumn).
		Updates(map[string]any{
			r.flagColumn: false,
			"updated_by": actor,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.base.DB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
