package util

import (
	"dsa_platform_backend/internal/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 7}, Email: "ada@example.com"}

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestParseJWT_Rejects(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Email: "a@b.c"}

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "another-secret")
	assert.Error(t, err, "wrong secret")

	expired, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(unsigned, testSecret)
	assert.Error(t, err, "alg none")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
	})
	signed, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseJWT(signed, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: TokenIssuer},
	})
	signed, err = anonymous.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseJWT(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUserID(c)
	assert.False(t, ok)

	c.Set(UserClaimsKey, &Claims{UserID: 42})
	id, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}
