package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Verify_MissingUserID(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, svc.ttl)
}
