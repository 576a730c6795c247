package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundreel/admin-backend/pkg/auth"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "soundreel-admin",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	adminID := uuid.New()
	now := time.Now()

	token, err := auth.MintAccessToken(cfg, now, auth.AccessTokenPayload{
		AdminID: adminID,
		Role:    enums.AdminRoleSuperAdmin,
		JTI:     "session-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, enums.AdminRoleSuperAdmin, claims.Role)
	assert.Equal(t, "session-1", claims.ID)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestMintAccessToken_DefaultsJTI(t *testing.T) {
	cfg := testJWTConfig()

	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Role:    enums.AdminRoleAdmin,
	})
	require.NoError(t, err)

	claims, err := auth.ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err)
}

func TestMintAccessToken_InvalidRole(t *testing.T) {
	cfg := testJWTConfig()

	_, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Role:    enums.AdminRole("NOT_A_ROLE"),
	})
	require.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().Add(-time.Hour)

	token, err := auth.MintAccessToken(cfg, issued, auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Role:    enums.AdminRoleAdmin,
	})
	require.NoError(t, err)

	_, err = auth.ParseAccessToken(cfg, token)
	require.Error(t, err)

	claims, err := auth.ParseAccessTokenAllowExpired(cfg, token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
}

func TestParseAccessToken_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()

	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Role:    enums.AdminRoleAdmin,
	})
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = auth.ParseAccessToken(other, token)
	require.Error(t, err)
}
