package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagwon-app/hagwon/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "hagwon.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	service := newTestService(time.Hour)
	user := &models.User{UserID: "student_kim", Role: models.RoleStudent}

	accessToken, refreshToken, expiresIn, err := service.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "student_kim", claims.UserID)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, "hagwon.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	service := newTestService(time.Hour)
	user := &models.User{UserID: "student_kim", Role: models.RoleStudent}

	_, first, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)
	_, second, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)
	user := &models.User{UserID: "student_kim", Role: models.RoleStudent}

	accessToken, _, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "hagwon.test",
	})

	accessToken, _, _, err := service.GenerateTokenPair(&models.User{UserID: "u", Role: models.RoleChief})
	require.NoError(t, err)

	_, err = other.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	service := newTestService(time.Hour)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateAndExtractClaims("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
