package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykhalil/gulfboard/internal/board/models"
)

const testSecret = "test_secret"

func testUser() *models.User {
	return &models.User{
		ID:    "user-1",
		Email: "seeker@example.com",
		Name:  "Ahmed Hassan",
		Role:  models.RoleJobSeeker,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := validateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "seeker@example.com", claims.Email)
	assert.Equal(t, "Ahmed Hassan", claims.Name)
	assert.Equal(t, models.RoleJobSeeker, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)

	_, err = validateToken(token, "other_secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := validateToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestValidateTokenWrongSigningMethod(t *testing.T) {
	// An unsigned token must be rejected even if it parses.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = validateToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestValidateTokenMissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@example.com"})
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = validateToken(tokenString, testSecret)
	assert.Error(t, err)
}
