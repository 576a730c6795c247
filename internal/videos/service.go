package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/internal/projection"
	"github.com/soundreel/admin-backend/pkg/db/models"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

type videosRepository interface {
	ListLiveWithRefs(ctx context.Context) ([]models.Video, error)
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Create(ctx context.Context, row *models.Video) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]any) error
	MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
}

type soundResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Sound, error)
}

type userResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error)
}

type sectionResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.DiscoverySection, error)
}

// Service exposes video management to the panel.
type Service interface {
	ListVideos(ctx context.Context) ([]VideoDTO, error)
	SaveVideo(ctx context.Context, actorID uuid.UUID, input SaveVideoInput) (*VideoDTO, error)
	DeleteVideo(ctx context.Context, actorID, id uuid.UUID) error
}

type service struct {
	repo     videosRepository
	sounds   soundResolver
	users    userResolver
	sections sectionResolver
	store    *media.Store
}

// NewService builds a video service over the repositories and media store.
func NewService(repo videosRepository, sounds soundResolver, users userResolver, sections sectionResolver, store *media.Store) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("video repository is required")
	}
	if sounds == nil {
		return nil, fmt.Errorf("sound resolver is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user resolver is required")
	}
	if sections == nil {
		return nil, fmt.Errorf("section resolver is required")
	}
	if store == nil {
		return nil, fmt.Errorf("media store is required")
	}
	return &service{repo: repo, sounds: sounds, users: users, sections: sections, store: store}, nil
}

// ListVideos returns live videos newest first, each with a short-lived
// playback URL and its references resolved for the table.
func (s *service) ListVideos(ctx context.Context) ([]VideoDTO, error) {
	rows, err := s.repo.ListLiveWithRefs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list videos")
	}
	return s.project(ctx, rows)
}

// SaveVideo creates a new video or updates the one named by input.ID. A
// fresh upload replaces the stored object key; without one the prior key is
// kept. All three references are optional but must exist when given.
func (s *service) SaveVideo(ctx context.Context, actorID uuid.UUID, input SaveVideoInput) (*VideoDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if input.ID == nil && input.Upload == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"video": "video file is required"})
	}

	if err := s.resolveRefs(ctx, input); err != nil {
		return nil, err
	}

	var (
		video *models.Video
		err   error
	)
	if input.ID == nil {
		video, err = s.create(ctx, actorID, input)
	} else {
		video, err = s.update(ctx, actorID, *input.ID, input)
	}
	if err != nil {
		return nil, err
	}

	dtos, err := s.project(ctx, []models.Video{*video})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// DeleteVideo soft-deletes the video. The bucket object stays addressable
// for audit review.
func (s *service) DeleteVideo(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if err := s.repo.MarkDeleted(ctx, id, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "video not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete video")
	}
	return nil
}

func (s *service) create(ctx context.Context, actorID uuid.UUID, input SaveVideoInput) (*models.Video, error) {
	key, err := s.store.Upload(ctx, media.PrefixVideo, input.Upload.Filename, input.Upload.ContentType, input.Upload.Body)
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		ID:                 uuid.New(),
		VideoKey:           key,
		SoundID:            input.SoundID,
		AppUserID:          input.AppUserID,
		DiscoverySectionID: input.DiscoverySectionID,
		CreatedBy:          &actorID,
		UpdatedBy:          &actorID,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create video")
	}

	reloaded, err := s.repo.FindByIDWithRefs(ctx, video.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload video")
	}
	return reloaded, nil
}

func (s *service) update(ctx context.Context, actorID, id uuid.UUID, input SaveVideoInput) (*models.Video, error) {
	values := map[string]any{
		"sound_id":             input.SoundID,
		"app_user_id":          input.AppUserID,
		"discovery_section_id": input.DiscoverySectionID,
		"updated_by":           actorID,
	}
	if input.Upload != nil {
		key, err := s.store.Upload(ctx, media.PrefixVideo, input.Upload.Filename, input.Upload.ContentType, input.Upload.Body)
		if err != nil {
			return nil, err
		}
		values["video_key"] = key
	}

	if err := s.repo.Updates(ctx, id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "video not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update video")
	}

	video, err := s.repo.FindByIDWithRefs(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload video")
	}
	return video, nil
}

// resolveRefs checks every provided reference before anything is written.
// Soft-deleted targets still count as existing so edits to old videos do
// not trip over later deletions.
func (s *service) resolveRefs(ctx context.Context, input SaveVideoInput) error {
	fields := map[string]string{}
	if input.SoundID != nil {
		if _, err := s.sounds.FindByID(ctx, *input.SoundID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve sound")
			}
			fields["sound_id"] = "sound does not exist"
		}
	}
	if input.AppUserID != nil {
		if _, err := s.users.FindByID(ctx, *input.AppUserID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve user")
			}
			fields["app_user_id"] = "user does not exist"
		}
	}
	if input.DiscoverySectionID != nil {
		if _, err := s.sections.FindByID(ctx, *input.DiscoverySectionID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve discovery section")
			}
			fields["discovery_section_id"] = "discovery section does not exist"
		}
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return nil
}

func (s *service) project(ctx context.Context, rows []models.Video) ([]VideoDTO, error) {
	keys := make([]string, len(rows))
	for i := range rows {
		keys[i] = rows[i].VideoKey
	}

	urls, err := projection.SignAll(ctx, keys, s.store.SignedReadURL)
	if err != nil {
		return nil, err
	}

	out := make([]VideoDTO, len(rows))
	for i := range rows {
		row := &rows[i]
		out[i] = VideoDTO{
			ID:                   row.ID,
			VideoURL:             urls[i],
			SoundID:              row.SoundID,
			SoundName:            projection.LiveName(row.Sound),
			AppUserID:            row.AppUserID,
			Username:             projection.LiveName(row.AppUser),
			DiscoverySectionID:   row.DiscoverySectionID,
			DiscoverySectionName: projection.LiveName(row.DiscoverySection),
			CreatedAt:            row.CreatedAt,
			UpdatedAt:            row.UpdatedAt,
		}
	}
	return out, nil
}
