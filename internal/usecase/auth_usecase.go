package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clicknova_admin/internal/auth"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrInvalidAuthInput   = errors.New("email and password are required")
)

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (interfaces.TokenClaims, error)
	Me(ctx context.Context, userID string) (entities.User, error)
	EnsureAdmin(ctx context.Context, email, password, name string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	tokens   interfaces.ITokenService
	sessions interfaces.ISessionStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService, sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, sessions: sessions}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidAuthInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	// A miss and a bad password fail identically so the login form leaks
	// nothing about which emails exist.
	if user.ID == "" || !auth.CheckPassword(user.PasswordHash, password) {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, _, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

// Logout blacklists the token id until the token would have expired anyway.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return u.sessions.Revoke(ctx, claims.TokenID, ttl)
}

// Verify parses the token and rejects it if the session was revoked.
func (u *AuthUseCase) Verify(ctx context.Context, token string) (interfaces.TokenClaims, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return interfaces.TokenClaims{}, err
	}

	revoked, err := u.sessions.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return interfaces.TokenClaims{}, err
	}
	if revoked {
		return interfaces.TokenClaims{}, ErrSessionRevoked
	}
	return claims, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// EnsureAdmin seeds the bootstrap admin account on startup. It is a no-op
// when the email already exists, so a redeploy never resets the password.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return ErrInvalidAuthInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         "admin",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
