package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taskhub/internal/apperrors"
	"taskhub/internal/auth"
)

// userIDFromContext resolves the authenticated user identity placed in the
// request context by the JWT middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, apperrors.Authentication("Invalid or expired token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == "" {
		return uuid.Nil, apperrors.Authentication("Invalid or expired token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperrors.Authentication("Invalid or expired token")
	}
	return userID, nil
}
