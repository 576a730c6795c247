package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/internal/admins"
	internalauth "github.com/soundreel/admin-backend/internal/auth"
	"github.com/soundreel/admin-backend/internal/appusers"
	"github.com/soundreel/admin-backend/internal/catalog"
	"github.com/soundreel/admin-backend/internal/sounds"
	"github.com/soundreel/admin-backend/internal/verifications"
	"github.com/soundreel/admin-backend/internal/videos"
	pkgauth "github.com/soundreel/admin-backend/pkg/auth"
	"github.com/soundreel/admin-backend/pkg/auth/session"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/enums"
	"github.com/soundreel/admin-backend/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
		Media: config.MediaConfig{MaxUploadMB: 10},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(testConfig(), logg, allowAllSessions{}, nil, nil, nil, Services{
		Auth:          stubAuthService{},
		Admins:        stubAdminsService{},
		Users:         stubUsersService{},
		Catalog:       stubCatalogService{},
		Sounds:        stubSoundsService{},
		Videos:        stubVideosService{},
		Verifications: stubVerificationsService{},
	})
}

func buildToken(t *testing.T, role enums.AdminRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(testConfig().JWT, time.Now(), pkgauth.AccessTokenPayload{
		AdminID: uuid.New(),
		Role:    role,
		JTI:     session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Header().Get("X-SoundReel-Env") != "test" {
		t.Fatalf("expected env header, got %q", resp.Header().Get("X-SoundReel-Env"))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/users", "/api/v1/sounds", "/api/v1/verifications"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", path, resp.Code)
		}
	}
}

func TestAdminRoutesNeedSuperAdmin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.AdminRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admins", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.AdminRoleSuperAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAuthorizedListingSucceeds(t *testing.T) {
	router := newTestRouter(t)
	token := buildToken(t, enums.AdminRoleAdmin)

	for _, path := range []string{"/api/v1/users", "/api/v1/discovery-sections", "/api/v1/videos"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

type allowAllSessions struct{}

func (allowAllSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req internalauth.LoginRequest) (*internalauth.LoginResponse, error) {
	return &internalauth.LoginResponse{}, nil
}

func (stubAuthService) Refresh(ctx context.Context, req internalauth.RefreshRequest) (*internalauth.RefreshResponse, error) {
	return &internalauth.RefreshResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error { return nil }

func (stubAuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, req internalauth.ChangePasswordRequest) error {
	return nil
}

type stubAdminsService struct{}

func (stubAdminsService) ListAdmins(ctx context.Context, callerID uuid.UUID) ([]admins.AdminDTO, error) {
	return []admins.AdminDTO{}, nil
}

func (stubAdminsService) SaveAdmin(ctx context.Context, actorID uuid.UUID, input admins.SaveAdminInput) (*admins.AdminDTO, error) {
	return &admins.AdminDTO{}, nil
}

type stubUsersService struct{}

func (stubUsersService) ListUsers(ctx context.Context) ([]appusers.UserDTO, error) {
	return []appusers.UserDTO{}, nil
}

func (stubUsersService) SaveUser(ctx context.Context, actorID uuid.UUID, input appusers.SaveUserInput) (*appusers.UserDTO, error) {
	return &appusers.UserDTO{}, nil
}

func (stubUsersService) BlockUser(ctx context.Context, actorID, userID uuid.UUID) error { return nil }

func (stubUsersService) UnblockUser(ctx context.Context, actorID, userID uuid.UUID) error { return nil }

func (stubUsersService) SearchUsers(ctx context.Context, query string, limit int) ([]appusers.UserDTO, error) {
	return []appusers.UserDTO{}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListDiscoverySections(ctx context.Context) ([]catalog.SectionDTO, error) {
	return []catalog.SectionDTO{}, nil
}

func (stubCatalogService) SaveDiscoverySection(ctx context.Context, actorID uuid.UUID, input catalog.SaveSectionInput) (*catalog.SectionDTO, error) {
	return &catalog.SectionDTO{}, nil
}

func (stubCatalogService) DeleteDiscoverySection(ctx context.Context, actorID, id uuid.UUID) error {
	return nil
}

func (stubCatalogService) ListSoundSections(ctx context.Context) ([]catalog.SectionDTO, error) {
	return []catalog.SectionDTO{}, nil
}

func (stubCatalogService) SaveSoundSection(ctx context.Context, actorID uuid.UUID, input catalog.SaveSectionInput) (*catalog.SectionDTO, error) {
	return &catalog.SectionDTO{}, nil
}

func (stubCatalogService) DeleteSoundSection(ctx context.Context, actorID, id uuid.UUID) error {
	return nil
}

func (stubCatalogService) ListSoundLanguages(ctx context.Context) ([]catalog.LanguageDTO, error) {
	return []catalog.LanguageDTO{}, nil
}

func (stubCatalogService) SaveSoundLanguage(ctx context.Context, actorID uuid.UUID, input catalog.SaveLanguageInput) (*catalog.LanguageDTO, error) {
	return &catalog.LanguageDTO{}, nil
}

func (stubCatalogService) DeleteSoundLanguage(ctx context.Context, actorID, id uuid.UUID) error {
	return nil
}

type stubSoundsService struct{}

func (stubSoundsService) ListSounds(ctx context.Context) ([]sounds.SoundDTO, error) {
	return []sounds.SoundDTO{}, nil
}

func (stubSoundsService) SaveSound(ctx context.Context, actorID uuid.UUID, input sounds.SaveSoundInput) (*sounds.SoundDTO, error) {
	return &sounds.SoundDTO{}, nil
}

func (stubSoundsService) DeleteSound(ctx context.Context, actorID, id uuid.UUID) error { return nil }

func (stubSoundsService) SearchSounds(ctx context.Context, query string, limit int) ([]sounds.SoundDTO, error) {
	return []sounds.SoundDTO{}, nil
}

type stubVideosService struct{}

func (stubVideosService) ListVideos(ctx context.Context) ([]videos.VideoDTO, error) {
	return []videos.VideoDTO{}, nil
}

func (stubVideosService) SaveVideo(ctx context.Context, actorID uuid.UUID, input videos.SaveVideoInput) (*videos.VideoDTO, error) {
	return &videos.VideoDTO{}, nil
}

func (stubVideosService) DeleteVideo(ctx context.Context, actorID, id uuid.UUID) error { return nil }

type stubVerificationsService struct{}

func (stubVerificationsService) ListVerifications(ctx context.Context) ([]verifications.VerificationDTO, error) {
	return []verifications.VerificationDTO{}, nil
}

func (stubVerificationsService) SubmitVerification(ctx context.Context, actorID uuid.UUID, input verifications.SubmitVerificationInput) (*verifications.VerificationDTO, error) {
	return &verifications.VerificationDTO{}, nil
}

func (stubVerificationsService) DecideVerification(ctx context.Context, actorID, verificationID uuid.UUID, decision string) (*verifications.VerificationDTO, error) {
	return &verifications.VerificationDTO{}, nil
}
