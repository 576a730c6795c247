package verifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/internal/projection"
	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

type verificationsRepository interface {
	ListNewestFirst(ctx context.Context) ([]models.ProfileVerification, error)
	Create(ctx context.Context, row *models.ProfileVerification) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProfileVerification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.VerificationStatus, actor uuid.UUID) error
}

type usersLister interface {
	ListAll(ctx context.Context, order string) ([]models.AppUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error)
}

// Service exposes identity review to the panel.
type Service interface {
	ListVerifications(ctx context.Context) ([]VerificationDTO, error)
	SubmitVerification(ctx context.Context, actorID uuid.UUID, input SubmitVerificationInput) (*VerificationDTO, error)
	DecideVerification(ctx context.Context, actorID, verificationID uuid.UUID, decision string) (*VerificationDTO, error)
}

type service struct {
	repo  verificationsRepository
	users usersLister
	store *media.Store
}

// NewService builds a verification service over the repositories and media
// store.
func NewService(repo verificationsRepository, users usersLister, store *media.Store) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("verification repository is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if store == nil {
		return nil, fmt.Errorf("media store is required")
	}
	return &service{repo: repo, users: users, store: store}, nil
}

// ListVerifications returns one row per end user, blocked included, carrying
// that user's newest submission when one exists. Verification history stays
// visible regardless of current block status, and users without submissions
// still appear so reviewers see who never verified.
func (s *service) ListVerifications(ctx context.Context) ([]VerificationDTO, error) {
	users, err := s.users.ListAll(ctx, "created_at ASC, id ASC")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}

	submissions, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list verifications")
	}

	// Rows come back newest first, so the first submission seen per user
	// is the one the panel shows.
	latest := make(map[uuid.UUID]*models.ProfileVerification, len(submissions))
	for i := range submissions {
		row := &submissions[i]
		if _, ok := latest[row.AppUserID]; !ok {
			latest[row.AppUserID] = row
		}
	}

	idCardKeys := make([]string, len(users))
	photoKeys := make([]string, len(users))
	for i := range users {
		if row, ok := latest[users[i].ID]; ok {
			idCardKeys[i] = row.IDCardKey
			photoKeys[i] = row.PhotoKey
		}
	}

	idCardURLs, err := projection.SignAll(ctx, idCardKeys, s.store.SignedReadURL)
	if err != nil {
		return nil, err
	}
	photoURLs, err := projection.SignAll(ctx, photoKeys, s.store.SignedReadURL)
	if err != nil {
		return nil, err
	}

	out := make([]VerificationDTO, len(users))
	for i := range users {
		user := &users[i]
		dto := VerificationDTO{
			AppUserID: user.ID,
			Username:  user.Username,
			Name:      user.Name,
			Status:    enums.VerificationStatusPending,
		}
		if row, ok := latest[user.ID]; ok {
			id := row.ID
			submitted := row.CreatedAt
			dto.VerificationID = &id
			dto.IDCardURL = idCardURLs[i]
			dto.PhotoURL = photoURLs[i]
			dto.Status = row.Status
			dto.SubmittedAt = &submitted
		}
		out[i] = dto
	}
	return out, nil
}

// SubmitVerification records a fresh identity submission for a user. Both
// documents are required; a new submission supersedes older ones in the
// listing and starts out pending.
func (s *service) SubmitVerification(ctx context.Context, actorID uuid.UUID, input SubmitVerificationInput) (*VerificationDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	details := map[string]string{}
	if input.AppUserID == nil {
		details["app_user_id"] = "user is required"
	}
	if input.IDCard == nil {
		details["id_card"] = "id card file is required"
	}
	if input.Photo == nil {
		details["photo"] = "photo file is required"
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	if _, err := s.users.FindByID(ctx, *input.AppUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"app_user_id": "user does not exist"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve user")
	}

	idCardKey, err := s.store.Upload(ctx, media.PrefixIDCard, input.IDCard.Filename, input.IDCard.ContentType, input.IDCard.Body)
	if err != nil {
		return nil, err
	}
	photoKey, err := s.store.Upload(ctx, media.PrefixPhoto, input.Photo.Filename, input.Photo.ContentType, input.Photo.Body)
	if err != nil {
		return nil, err
	}

	row := &models.ProfileVerification{
		ID:        uuid.New(),
		AppUserID: *input.AppUserID,
		IDCardKey: idCardKey,
		PhotoKey:  photoKey,
		Status:    enums.VerificationStatusPending,
		CreatedBy: &actorID,
		UpdatedBy: &actorID,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create verification")
	}
	return s.projectOne(ctx, row)
}

// DecideVerification stamps an approve or reject decision on a submission
// and returns the refreshed row.
func (s *service) DecideVerification(ctx context.Context, actorID, verificationID uuid.UUID, decision string) (*VerificationDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	status, err := enums.ParseVerificationDecision(decision)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"decision": "decision must be APPROVED or REJECTED"})
	}

	if err := s.repo.UpdateStatus(ctx, verificationID, status, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "verification not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update verification status")
	}

	row, err := s.repo.FindByID(ctx, verificationID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload verification")
	}
	return s.projectOne(ctx, row)
}

func (s *service) projectOne(ctx context.Context, row *models.ProfileVerification) (*VerificationDTO, error) {
	idCardURL, err := s.store.SignedReadURL(row.IDCardKey)
	if err != nil {
		return nil, err
	}
	photoURL, err := s.store.SignedReadURL(row.PhotoKey)
	if err != nil {
		return nil, err
	}

	dto := VerificationDTO{
		AppUserID: row.AppUserID,
		Status:    row.Status,
		IDCardURL: idCardURL,
		PhotoURL:  photoURL,
	}
	id := row.ID
	submitted := row.CreatedAt
	dto.VerificationID = &id
	dto.SubmittedAt = &submitted

	user, err := s.users.FindByID(ctx, row.AppUserID)
	if err == nil {
		dto.Username = user.Username
		dto.Name = user.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve user")
	}
	return &dto, nil
}
