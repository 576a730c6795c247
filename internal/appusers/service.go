package appusers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/pkg/db"
	"github.com/soundreel/admin-backend/pkg/db/models"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
	"github.com/soundreel/admin-backend/pkg/pagination"
)

// usernameSigil prefixes every stored username exactly once.
const usernameSigil = "@"

type usersRepository interface {
	ListLive(ctx context.Context, order string) ([]models.AppUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error)
	Create(ctx context.Context, user *models.AppUser) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]any) error
	MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	MarkRestored(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]models.AppUser, error)
}

// Service exposes end-user management to the panel.
type Service interface {
	ListUsers(ctx context.Context) ([]UserDTO, error)
	SaveUser(ctx context.Context, actorID uuid.UUID, input SaveUserInput) (*UserDTO, error)
	BlockUser(ctx context.Context, actorID, userID uuid.UUID) error
	UnblockUser(ctx context.Context, actorID, userID uuid.UUID) error
	SearchUsers(ctx context.Context, query string, limit int) ([]UserDTO, error)
}

type service struct {
	repo usersRepository
}

// NewService builds an end-user management service.
func NewService(repo usersRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{repo: repo}, nil
}

// ListUsers returns unblocked end users, oldest first. Blocked users drop
// out of the listing but stay addressable by id for the unblock flow.
func (s *service) ListUsers(ctx context.Context) ([]UserDTO, error) {
	rows, err := s.repo.ListLive(ctx, "created_at ASC, id ASC")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return toDTOs(rows), nil
}

// SaveUser creates a new end user or updates the one named by input.ID.
func (s *service) SaveUser(ctx context.Context, actorID uuid.UUID, input SaveUserInput) (*UserDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	fields := map[string]string{}
	username := NormalizeUsername(input.Username)
	if username == usernameSigil {
		fields["username"] = "username is required"
	}
	if input.Device != "" && !input.Device.IsValid() {
		fields["device"] = "device must be Android or iOS"
	}
	if len(fields) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}

	if input.ID != nil {
		return s.update(ctx, actorID, *input.ID, username, input)
	}
	return s.create(ctx, actorID, username, input)
}

func (s *service) create(ctx context.Context, actorID uuid.UUID, username string, input SaveUserInput) (*UserDTO, error) {
	user := &models.AppUser{
		ID:        uuid.New(),
		UserID:    uuid.NewString(),
		Username:  username,
		Name:      strings.TrimSpace(input.Name),
		Device:    input.Device,
		CreatedBy: &actorID,
		UpdatedBy: &actorID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "username") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"username": "username already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return FromModel(user), nil
}

func (s *service) update(ctx context.Context, actorID, id uuid.UUID, username string, input SaveUserInput) (*UserDTO, error) {
	values := map[string]any{
		"username":   username,
		"name":       strings.TrimSpace(input.Name),
		"updated_by": actorID,
	}
	if input.Device != "" {
		values["device"] = input.Device
	}

	if err := s.repo.Updates(ctx, id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		if db.IsUniqueViolation(err, "username") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"username": "username already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload user")
	}
	return FromModel(user), nil
}

// BlockUser flags the user so they drop out of app surfaces. Blocking an
// already blocked user is a no-op.
func (s *service) BlockUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if err := s.repo.MarkDeleted(ctx, userID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "block user")
	}
	return nil
}

// UnblockUser clears the blocked flag.
func (s *service) UnblockUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if err := s.repo.MarkRestored(ctx, userID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "unblock user")
	}
	return nil
}

// SearchUsers matches the query against usernames and display names.
func (s *service) SearchUsers(ctx context.Context, query string, limit int) ([]UserDTO, error) {
	if strings.TrimSpace(query) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"q": "search query is required"})
	}
	rows, err := s.repo.Search(ctx, query, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search users")
	}
	return toDTOs(rows), nil
}

// NormalizeUsername trims the input and prepends the sigil exactly once.
func NormalizeUsername(username string) string {
	trimmed := strings.TrimSpace(username)
	trimmed = strings.TrimPrefix(trimmed, usernameSigil)
	return usernameSigil + trimmed
}

func toDTOs(rows []models.AppUser) []UserDTO {
	out := make([]UserDTO, len(rows))
	for i := range rows {
		out[i] = *FromModel(&rows[i])
	}
	return out
}
