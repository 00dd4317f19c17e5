package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kerem/clubsphere/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "clubsphere.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:           42,
		Email:        "student@school.edu.tr",
		Role:         models.RoleStudent,
		UniversityID: 3,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.Equal(t, 3600, expiresIn)
	require.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "student@school.edu.tr", claims.Email)
	require.Equal(t, "STUDENT", claims.Role)
	require.Equal(t, int64(3), claims.UniversityID)
	require.Equal(t, "clubsphere.test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(access)
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)
	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
