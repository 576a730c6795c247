package sounds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/internal/projection"
	"github.com/soundreel/admin-backend/pkg/db"
	"github.com/soundreel/admin-backend/pkg/db/models"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
	"github.com/soundreel/admin-backend/pkg/pagination"
)

type soundsRepository interface {
	ListLiveWithRefs(ctx context.Context) ([]models.Sound, error)
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*models.Sound, error)
	CreateWithRefs(ctx context.Context, sound *models.Sound) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]any) error
	ReplaceRefs(ctx context.Context, sound *models.Sound, sections []models.SoundSection, languages []models.SoundLanguage) error
	MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]models.Sound, error)
}

type sectionsRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SoundSection, error)
}

type languagesRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SoundLanguage, error)
}

// Service exposes sound management to the panel.
type Service interface {
	ListSounds(ctx context.Context) ([]SoundDTO, error)
	SaveSound(ctx context.Context, actorID uuid.UUID, input SaveSoundInput) (*SoundDTO, error)
	DeleteSound(ctx context.Context, actorID, id uuid.UUID) error
	SearchSounds(ctx context.Context, query string, limit int) ([]SoundDTO, error)
}

type service struct {
	repo      soundsRepository
	sections  sectionsRepository
	languages languagesRepository
	store     *media.Store
}

// NewService builds a sound service over the repositories and media store.
func NewService(repo soundsRepository, sections sectionsRepository, languages languagesRepository, store *media.Store) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sound repository is required")
	}
	if sections == nil {
		return nil, fmt.Errorf("section repository is required")
	}
	if languages == nil {
		return nil, fmt.Errorf("language repository is required")
	}
	if store == nil {
		return nil, fmt.Errorf("media store is required")
	}
	return &service{repo: repo, sections: sections, languages: languages, store: store}, nil
}

// ListSounds returns live sounds newest first, each with a short-lived
// playback URL and its taxonomy assignments projected for the table.
func (s *service) ListSounds(ctx context.Context) ([]SoundDTO, error) {
	rows, err := s.repo.ListLiveWithRefs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sounds")
	}
	return s.project(ctx, rows)
}

// SearchSounds matches the query against live sound names.
func (s *service) SearchSounds(ctx context.Context, query string, limit int) ([]SoundDTO, error) {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"q": "search query is required"})
	}
	rows, err := s.repo.Search(ctx, trimmed, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search sounds")
	}
	return s.project(ctx, rows)
}

// SaveSound creates a new sound or updates the one named by input.ID. A
// fresh upload replaces the stored object key; without one the prior key is
// kept.
func (s *service) SaveSound(ctx context.Context, actorID uuid.UUID, input SaveSoundInput) (*SoundDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	fields := map[string]string{}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		fields["name"] = "name is required"
	}
	if input.ID == nil && input.Upload == nil {
		fields["sound"] = "sound file is required"
	}
	if len(fields) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}

	sections, languages, err := s.resolveRefs(ctx, input.SectionIDs, input.LanguageIDs)
	if err != nil {
		return nil, err
	}

	var sound *models.Sound
	if input.ID == nil {
		sound, err = s.create(ctx, actorID, name, sections, languages, input.Upload)
	} else {
		sound, err = s.update(ctx, actorID, *input.ID, name, sections, languages, input.Upload)
	}
	if err != nil {
		return nil, err
	}

	dtos, err := s.project(ctx, []models.Sound{*sound})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// DeleteSound soft-deletes the sound. The bucket object stays: historical
// videos keep referencing it.
func (s *service) DeleteSound(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if err := s.repo.MarkDeleted(ctx, id, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "sound not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete sound")
	}
	return nil
}

func (s *service) create(ctx context.Context, actorID uuid.UUID, name string, sections []models.SoundSection, languages []models.SoundLanguage, upload *media.Upload) (*models.Sound, error) {
	key, err := s.store.Upload(ctx, media.PrefixAudio, upload.Filename, upload.ContentType, upload.Body)
	if err != nil {
		return nil, err
	}

	sound := &models.Sound{
		ID:        uuid.New(),
		Name:      name,
		SoundKey:  key,
		Sections:  sections,
		Languages: languages,
		CreatedBy: &actorID,
		UpdatedBy: &actorID,
	}
	if err := s.repo.CreateWithRefs(ctx, sound); err != nil {
		if db.IsUniqueViolation(err, "name") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"name": "name already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create sound")
	}
	return sound, nil
}

func (s *service) update(ctx context.Context, actorID, id uuid.UUID, name string, sections []models.SoundSection, languages []models.SoundLanguage, upload *media.Upload) (*models.Sound, error) {
	values := map[string]any{
		"name":       name,
		"updated_by": actorID,
	}
	if upload != nil {
		key, err := s.store.Upload(ctx, media.PrefixAudio, upload.Filename, upload.ContentType, upload.Body)
		if err != nil {
			return nil, err
		}
		values["sound_key"] = key
	}

	if err := s.repo.Updates(ctx, id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sound not found")
		}
		if db.IsUniqueViolation(err, "name") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"name": "name already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update sound")
	}

	sound, err := s.repo.FindByIDWithRefs(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload sound")
	}
	if err := s.repo.ReplaceRefs(ctx, sound, sections, languages); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace sound assignments")
	}
	sound.Sections = sections
	sound.Languages = languages
	return sound, nil
}

func (s *service) resolveRefs(ctx context.Context, sectionIDs, languageIDs []uuid.UUID) ([]models.SoundSection, []models.SoundLanguage, error) {
	sections, err := s.sections.FindByIDs(ctx, sectionIDs)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve sections")
	}
	if len(sections) != len(sectionIDs) {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"section_ids": "one or more sections do not exist"})
	}
	languages, err := s.languages.FindByIDs(ctx, languageIDs)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve languages")
	}
	if len(languages) != len(languageIDs) {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"language_ids": "one or more languages do not exist"})
	}
	return sections, languages, nil
}

func (s *service) project(ctx context.Context, rows []models.Sound) ([]SoundDTO, error) {
	keys := make([]string, len(rows))
	for i := range rows {
		keys[i] = rows[i].SoundKey
	}

	urls, err := projection.SignAll(ctx, keys, s.store.SignedReadURL)
	if err != nil {
		return nil, err
	}

	out := make([]SoundDTO, len(rows))
	for i := range rows {
		row := &rows[i]
		// Deleted taxonomy targets drop out of the projection entirely,
		// ids and names alike.
		sections := projection.Live(row.Sections)
		languages := projection.Live(row.Languages)
		out[i] = SoundDTO{
			ID:            row.ID,
			Name:          row.Name,
			SectionIDs:    projection.IDs(sections),
			SectionNames:  projection.JoinLiveNames(sections),
			LanguageIDs:   projection.IDs(languages),
			LanguageNames: projection.JoinLiveNames(languages),
			SoundURL:      urls[i],
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
	}
	return out, nil
}
