package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued tokens stay valid unless configured
// otherwise. Sessions are stateless: there is no revocation, logout is a
// client-side discard and tokens live until natural expiry.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims carries the authenticated user identity inside a bearer token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed bearer tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service signing with secret. A non-positive
// ttl falls back to DefaultTokenTTL.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Secret exposes the signing key for the route-level JWT middleware.
func (s *JWTService) Secret() []byte { return s.secret }

// Issue signs a new bearer token for the given user.
func (s *JWTService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates a token and returns the embedded user identity. It fails
// for bad signatures, malformed payloads and expired tokens alike.
func (s *JWTService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}
