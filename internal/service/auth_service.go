package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskhub/internal/apperrors"
	"taskhub/internal/auth"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

const bcryptCost = 12

// defaultLists are seeded for every new user at registration. Their ids are
// protected from deletion regardless of whether the row still exists.
var defaultLists = []struct {
	ID   string
	Name string
	Icon string
}{
	{"inbox", "Inbox", "inbox"},
	{"personal", "Personal", "user"},
	{"work", "Work", "briefcase"},
	{"shopping", "Shopping", "shopping-cart"},
}

// IsDefaultListID reports whether id names a protected default list.
func IsDefaultListID(id string) bool {
	for _, l := range defaultLists {
		if l.ID == id {
			return true
		}
	}
	return false
}

// AuthService handles registration and login. Both return a fresh bearer
// token on success.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users repository.UserRepository
	lists repository.ListRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, lists repository.ListRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, lists: lists, jwt: jwt}
}

// normalizeEmail applies the canonical form used for storage and lookups.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a hashed password, seeds the four default
// lists under the new identity and returns a session token.
func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", apperrors.Validation("Email is required")
	}
	if len(password) < 6 {
		return "", apperrors.Validation("Password must be at least 6 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.Conflict("Email already in use")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.Conflict("Email already in use")
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	// Seed default lists so the UI works immediately. If this fails after
	// the user row landed there is no compensating action; the request
	// fails and the account is left without its defaults.
	seed := make([]model.List, 0, len(defaultLists))
	for _, l := range defaultLists {
		seed = append(seed, model.List{
			ListID: l.ID,
			UserID: user.ID,
			Name:   l.Name,
			Icon:   l.Icon,
		})
	}
	if err := s.lists.CreateBatch(ctx, seed); err != nil {
		return "", fmt.Errorf("seed default lists: %w", err)
	}

	token, err := s.jwt.Issue(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password fail identically so callers cannot enumerate users.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Authentication("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.Authentication("Invalid credentials")
	}

	token, err := s.jwt.Issue(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
