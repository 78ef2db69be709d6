package auth

import (
	"testing"
	"time"

	"atrium/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID, "editor")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "editor", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	_, hasRole := claims["role"]
	assert.False(t, hasRole)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), "member")
	require.NoError(t, err)

	// Access tokens are signed with a different secret and type than refresh
	// tokens; crossing them over must fail.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "member")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "x")
	assert.Error(t, err)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, hasher.Check("s3cret-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
}
