package services

import (
	"context"
	"errors"
	"strings"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles login and profile lookups.
type AuthService struct {
	users UserReader
	jwt   TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, jwt TokenGenerator) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// NormalizeUsername lowercases and trims a handle before lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Login authenticates a user and returns the profile with a JWT token.
// Any unknown handle or password mismatch yields ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.users.GetByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil || !user.CheckPassword(password) {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the public profile for a known user id.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns every known user.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	return svc.users.List(ctx)
}
