// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/cohort-api/internal/config"
	"github.com/angelamos/cohort-api/internal/core"
)

func testJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 7 * 24 * time.Hour,
		Issuer:             "cohort-api-test",
		Audience:           "cohort-api-clients",
	})
	require.NoError(t, err)

	return manager
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := testJWTManager(t)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID:       42,
		Role:         "TEACHER",
		TokenVersion: 3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "TEACHER", claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(
		t,
		time.Now().Add(15*time.Minute),
		claims.ExpiresAt,
		time.Minute,
	)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := testJWTManager(t)

	_, err := manager.VerifyAccessToken(
		context.Background(),
		"not.a.token",
	)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuing := testJWTManager(t)
	verifying := testJWTManager(t)

	token, err := issuing.CreateAccessToken(AccessTokenClaims{
		UserID: 1,
		Role:   "STUDENT",
	})
	require.NoError(t, err)

	_, err = verifying.VerifyAccessToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestRefreshTokenData(t *testing.T) {
	manager := testJWTManager(t)

	data, err := manager.CreateRefreshToken("")
	require.NoError(t, err)

	assert.NotEmpty(t, data.Token)
	assert.NotEmpty(t, data.FamilyID)
	assert.Equal(t, core.HashToken(data.Token), data.Hash)
	assert.WithinDuration(
		t,
		time.Now().Add(7*24*time.Hour),
		data.ExpiresAt,
		time.Minute,
	)

	// Rotation keeps the family.
	rotated, err := manager.CreateRefreshToken(data.FamilyID)
	require.NoError(t, err)
	assert.Equal(t, data.FamilyID, rotated.FamilyID)
	assert.NotEqual(t, data.Token, rotated.Token)
}
