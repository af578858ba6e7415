package auth

import (
	"testing"
	"time"

	"traiteur/config"
	"traiteur/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     bcrypt.MinCost,
			AccessTokenTTL: 15 * time.Minute,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "traiteur-test"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, expiresAt, err := tokenService.GenerateAccessToken("U1", []string{"Customer"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "U1", claims.Subject)
	assert.Equal(t, []string{"Customer"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "traiteur-test", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	cfg := newTestConfig()
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreignToken, _, err := otherService.GenerateAccessToken("U1", []string{"Administrator"})
	require.NoError(t, err)

	expired := tokenService.(*jwtService)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, _, err := expired.GenerateAccessToken("U1", nil)
	require.NoError(t, err)
	expired.now = time.Now

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "U1",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "U1",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	tokens := map[string]string{
		"garbage":        "clearly-not-a-jwt-token-format",
		"foreign secret": foreignToken,
		"expired":        expiredToken,
		"alg none":       noneToken,
		"wrong type":     refreshToken,
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)
		})
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestConfig())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("StrongPass123!", "not-a-hash"))
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
