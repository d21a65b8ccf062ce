package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhub/internal/apperrors"
	"taskhub/internal/service"
)

// AuthHandler handles registration, login and the identity check.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates the user, seeds the four default lists and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Me godoc
// @Summary Return the authenticated user id
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": userID.String()})
}
