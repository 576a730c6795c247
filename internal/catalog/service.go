package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db"
	"github.com/soundreel/admin-backend/pkg/db/models"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

const taxonomyListOrder = "created_at DESC, id DESC"

type taxonomyRepo[T any] interface {
	ListLive(ctx context.Context, order string) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, row *T) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]any) error
	MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
}

// Service manages the three curated taxonomies: discovery sections, sound
// sections, and sound languages.
type Service interface {
	ListDiscoverySections(ctx context.Context) ([]SectionDTO, error)
	SaveDiscoverySection(ctx context.Context, actorID uuid.UUID, input SaveSectionInput) (*SectionDTO, error)
	DeleteDiscoverySection(ctx context.Context, actorID, id uuid.UUID) error

	ListSoundSections(ctx context.Context) ([]SectionDTO, error)
	SaveSoundSection(ctx context.Context, actorID uuid.UUID, input SaveSectionInput) (*SectionDTO, error)
	DeleteSoundSection(ctx context.Context, actorID, id uuid.UUID) error

	ListSoundLanguages(ctx context.Context) ([]LanguageDTO, error)
	SaveSoundLanguage(ctx context.Context, actorID uuid.UUID, input SaveLanguageInput) (*LanguageDTO, error)
	DeleteSoundLanguage(ctx context.Context, actorID, id uuid.UUID) error
}

type service struct {
	discovery taxonomyRepo[models.DiscoverySection]
	sections  taxonomyRepo[models.SoundSection]
	languages taxonomyRepo[models.SoundLanguage]
}

// NewService builds a taxonomy service over the shared soft-delete repositories.
func NewService(
	discovery taxonomyRepo[models.DiscoverySection],
	sections taxonomyRepo[models.SoundSection],
	languages taxonomyRepo[models.SoundLanguage],
) (Service, error) {
	if discovery == nil || sections == nil || languages == nil {
		return nil, fmt.Errorf("all taxonomy repositories are required")
	}
	return &service{discovery: discovery, sections: sections, languages: languages}, nil
}

// NewServiceFromDB wires the taxonomy service straight onto a GORM connection.
func NewServiceFromDB(gdb *gorm.DB) (Service, error) {
	if gdb == nil {
		return nil, fmt.Errorf("db is required")
	}
	return NewService(
		repo.NewSoftDelete[models.DiscoverySection](gdb, "is_deleted"),
		repo.NewSoftDelete[models.SoundSection](gdb, "is_deleted"),
		repo.NewSoftDelete[models.SoundLanguage](gdb, "is_deleted"),
	)
}

func (s *service) ListDiscoverySections(ctx context.Context) ([]SectionDTO, error) {
	rows, err := s.discovery.ListLive(ctx, taxonomyListOrder)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discovery sections")
	}
	out := make([]SectionDTO, len(rows))
	for i := range rows {
		out[i] = *discoveryToDTO(&rows[i])
	}
	return out, nil
}

func (s *service) SaveDiscoverySection(ctx context.Context, actorID uuid.UUID, input SaveSectionInput) (*SectionDTO, error) {
	name, err := requireName(actorID, input.Name)
	if err != nil {
		return nil, err
	}
	row, err := saveTaxonomy(ctx, s.discovery, actorID, input.ID,
		func() *models.DiscoverySection {
			return &models.DiscoverySection{ID: uuid.New(), Name: name, CreatedBy: &actorID, UpdatedBy: &actorID}
		},
		map[string]any{"name": name, "updated_by": actorID},
		"discovery section",
	)
	if err != nil {
		return nil, err
	}
	return discoveryToDTO(row), nil
}

func (s *service) DeleteDiscoverySection(ctx context.Context, actorID, id uuid.UUID) error {
	return deleteTaxonomy(ctx, s.discovery, actorID, id, "discovery section")
}

func (s *service) ListSoundSections(ctx context.Context) ([]SectionDTO, error) {
	rows, err := s.sections.ListLive(ctx, taxonomyListOrder)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sound sections")
	}
	out := make([]SectionDTO, len(rows))
	for i := range rows {
		out[i] = *soundSectionToDTO(&rows[i])
	}
	return out, nil
}

func (s *service) SaveSoundSection(ctx context.Context, actorID uuid.UUID, input SaveSectionInput) (*SectionDTO, error) {
	name, err := requireName(actorID, input.Name)
	if err != nil {
		return nil, err
	}
	row, err := saveTaxonomy(ctx, s.sections, actorID, input.ID,
		func() *models.SoundSection {
			return &models.SoundSection{ID: uuid.New(), Name: name, CreatedBy: &actorID, UpdatedBy: &actorID}
		},
		map[string]any{"name": name, "updated_by": actorID},
		"sound section",
	)
	if err != nil {
		return nil, err
	}
	return soundSectionToDTO(row), nil
}

func (s *service) DeleteSoundSection(ctx context.Context, actorID, id uuid.UUID) error {
	return deleteTaxonomy(ctx, s.sections, actorID, id, "sound section")
}

func (s *service) ListSoundLanguages(ctx context.Context) ([]LanguageDTO, error) {
	rows, err := s.languages.ListLive(ctx, taxonomyListOrder)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sound languages")
	}
	out := make([]LanguageDTO, len(rows))
	for i := range rows {
		out[i] = *languageToDTO(&rows[i])
	}
	return out, nil
}

func (s *service) SaveSoundLanguage(ctx context.Context, actorID uuid.UUID, input SaveLanguageInput) (*LanguageDTO, error) {
	name, err := requireName(actorID, input.Name)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(input.Code)
	row, err := saveTaxonomy(ctx, s.languages, actorID, input.ID,
		func() *models.SoundLanguage {
			return &models.SoundLanguage{ID: uuid.New(), Name: name, Code: code, CreatedBy: &actorID, UpdatedBy: &actorID}
		},
		map[string]any{"name": name, "code": code, "updated_by": actorID},
		"sound language",
	)
	if err != nil {
		return nil, err
	}
	return languageToDTO(row), nil
}

func (s *service) DeleteSoundLanguage(ctx context.Context, actorID, id uuid.UUID) error {
	return deleteTaxonomy(ctx, s.languages, actorID, id, "sound language")
}

func requireName(actorID uuid.UUID, name string) (string, error) {
	if actorID == uuid.Nil {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"name": "name is required"})
	}
	return trimmed, nil
}

func saveTaxonomy[T any](
	ctx context.Context,
	r taxonomyRepo[T],
	actorID uuid.UUID,
	id *uuid.UUID,
	build func() *T,
	values map[string]any,
	label string,
) (*T, error) {
	if id == nil {
		row := build()
		if err := r.Create(ctx, row); err != nil {
			if db.IsUniqueViolation(err, "name") {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
					WithDetails(map[string]string{"name": "name already exists"})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create "+label)
		}
		return row, nil
	}

	if err := r.Updates(ctx, *id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, label+" not found")
		}
		if db.IsUniqueViolation(err, "name") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"name": "name already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update "+label)
	}
	row, err := r.FindByID(ctx, *id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload "+label)
	}
	return row, nil
}

func deleteTaxonomy[T any](ctx context.Context, r taxonomyRepo[T], actorID, id uuid.UUID, label string) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if err := r.MarkDeleted(ctx, id, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, label+" not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete "+label)
	}
	return nil
}
