package appusers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

type stubUsersRepo struct {
	users     map[uuid.UUID]*models.AppUser
	createErr error
}

func newStubUsersRepo() *stubUsersRepo {
	return &stubUsersRepo{users: map[uuid.UUID]*models.AppUser{}}
}

func (s *stubUsersRepo) ListLive(ctx context.Context, order string) ([]models.AppUser, error) {
	out := []models.AppUser{}
	for _, user := range s.users {
		if !user.IsBlocked {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (s *stubUsersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error) {
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) Create(ctx context.Context, user *models.AppUser) error {
	if s.createErr != nil {
		return s.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUsersRepo) Updates(ctx context.Context, id uuid.UUID, values map[string]any) error {
	user, ok := s.users[id]
	if !ok || user.IsBlocked {
		return gorm.ErrRecordNotFound
	}
	if username, ok := values["username"].(string); ok {
		user.Username = username
	}
	if name, ok := values["name"].(string); ok {
		user.Name = name
	}
	if device, ok := values["device"].(enums.Device); ok {
		user.Device = device
	}
	return nil
}

func (s *stubUsersRepo) MarkDeleted(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if !user.IsBlocked {
		user.IsBlocked = true
		user.UpdatedBy = &actor
	}
	return nil
}

func (s *stubUsersRepo) MarkRestored(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsBlocked = false
	return nil
}

func (s *stubUsersRepo) Search(ctx context.Context, query string, limit int) ([]models.AppUser, error) {
	needle := strings.ToLower(query)
	out := []models.AppUser{}
	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.Username), needle) {
			out = append(out, *user)
		}
	}
	return out, nil
}

func newUserService(t *testing.T, repo usersRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "@melody", NormalizeUsername("melody"))
	assert.Equal(t, "@melody", NormalizeUsername("@melody"))
	assert.Equal(t, "@melody", NormalizeUsername("  melody  "))
	assert.Equal(t, "@", NormalizeUsername(""))
}

func TestSaveUserCreateMintsUserIDAndSigil(t *testing.T) {
	repo := newStubUsersRepo()
	svc := newUserService(t, repo)

	created, err := svc.SaveUser(context.Background(), uuid.New(), SaveUserInput{
		Username: "melody",
		Name:     "Melody M",
		Device:   enums.DeviceAndroid,
	})
	require.NoError(t, err)
	assert.Equal(t, "@melody", created.Username)
	assert.NotEmpty(t, created.UserID)
	_, err = uuid.Parse(created.UserID)
	assert.NoError(t, err)

	// Saving an already-sigiled username must not double the sigil.
	again, err := svc.SaveUser(context.Background(), uuid.New(), SaveUserInput{
		Username: "@harmony",
		Device:   enums.DeviceIOS,
	})
	require.NoError(t, err)
	assert.Equal(t, "@harmony", again.Username)
}

func TestSaveUserDuplicateUsername(t *testing.T) {
	repo := newStubUsersRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "idx_app_users_username"`)
	svc := newUserService(t, repo)

	_, err := svc.SaveUser(context.Background(), uuid.New(), SaveUserInput{Username: "melody"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "username already exists", fields["username"])
}

func TestSaveUserUpdateMissingID(t *testing.T) {
	svc := newUserService(t, newStubUsersRepo())
	missing := uuid.New()

	_, err := svc.SaveUser(context.Background(), uuid.New(), SaveUserInput{
		ID:       &missing,
		Username: "ghost",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSaveUserValidation(t *testing.T) {
	svc := newUserService(t, newStubUsersRepo())

	_, err := svc.SaveUser(context.Background(), uuid.New(), SaveUserInput{
		Username: "  ",
		Device:   enums.Device("Windows"),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "device")
}

func TestListUsersExcludesBlocked(t *testing.T) {
	repo := newStubUsersRepo()
	melody := &models.AppUser{ID: uuid.New(), Username: "@melody"}
	ghost := &models.AppUser{ID: uuid.New(), Username: "@ghost", IsBlocked: true}
	repo.users[melody.ID] = melody
	repo.users[ghost.ID] = ghost
	svc := newUserService(t, repo)

	rows, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "@melody", rows[0].Username)

	// The blocked row stays addressable by id for the unblock flow.
	require.NoError(t, svc.UnblockUser(context.Background(), uuid.New(), ghost.ID))
	rows, err = svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBlockAndUnblockUser(t *testing.T) {
	repo := newStubUsersRepo()
	user := &models.AppUser{ID: uuid.New(), Username: "@melody"}
	repo.users[user.ID] = user
	svc := newUserService(t, repo)
	actor := uuid.New()

	require.NoError(t, svc.BlockUser(context.Background(), actor, user.ID))
	assert.True(t, repo.users[user.ID].IsBlocked)

	// Idempotent second block.
	require.NoError(t, svc.BlockUser(context.Background(), actor, user.ID))

	require.NoError(t, svc.UnblockUser(context.Background(), actor, user.ID))
	assert.False(t, repo.users[user.ID].IsBlocked)

	err := svc.BlockUser(context.Background(), actor, uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSearchUsersRequiresQuery(t *testing.T) {
	svc := newUserService(t, newStubUsersRepo())

	_, err := svc.SearchUsers(context.Background(), "   ", 10)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
