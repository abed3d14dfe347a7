package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clicknova_admin/internal/auth"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"
	mock_interfaces "clicknova_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("missing input", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, _, err := uc.Login(context.Background(), "", "")
		if !errors.Is(err, ErrInvalidAuthInput) {
			t.Fatalf("expected ErrInvalidAuthInput, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "admin@clicknova.in").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "admin@clicknova.in", "s3cret!")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "admin@clicknova.in").Return(entities.User{ID: "u-1", PasswordHash: hash}, nil)

		_, _, err := uc.Login(context.Background(), "admin@clicknova.in", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success normalizes email and issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, tokens, nil)

		user := entities.User{ID: "u-1", Email: "admin@clicknova.in", Role: "admin", PasswordHash: hash}
		users.EXPECT().GetByEmail(gomock.Any(), "admin@clicknova.in").Return(user, nil)
		tokens.EXPECT().Issue("u-1", "admin@clicknova.in", "admin").Return("signed-token", interfaces.TokenClaims{TokenID: "jti-1"}, nil)

		token, got, err := uc.Login(context.Background(), "  ADMIN@clicknova.in ", "s3cret!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Fatalf("expected issued token, got %q", token)
		}
		if got.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	t.Run("revokes until expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, tokens, sessions)

		expires := time.Now().Add(time.Hour)
		tokens.EXPECT().Parse("signed-token").Return(interfaces.TokenClaims{TokenID: "jti-1", ExpiresAt: expires}, nil)
		sessions.EXPECT().Revoke(gomock.Any(), "jti-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, ttl time.Duration) error {
				if ttl <= 0 || ttl > time.Hour {
					t.Fatalf("unexpected ttl %v", ttl)
				}
				return nil
			},
		)

		if err := uc.Logout(context.Background(), "signed-token"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired token is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(nil, tokens, nil)
		tokens.EXPECT().Parse("signed-token").Return(interfaces.TokenClaims{TokenID: "jti-1", ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		if err := uc.Logout(context.Background(), "signed-token"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Verify(t *testing.T) {
	t.Run("revoked session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, tokens, sessions)

		tokens.EXPECT().Parse("signed-token").Return(interfaces.TokenClaims{TokenID: "jti-1"}, nil)
		sessions.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)

		_, err := uc.Verify(context.Background(), "signed-token")
		if !errors.Is(err, ErrSessionRevoked) {
			t.Fatalf("expected ErrSessionRevoked, got %v", err)
		}
	})

	t.Run("live session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, tokens, sessions)

		tokens.EXPECT().Parse("signed-token").Return(interfaces.TokenClaims{TokenID: "jti-1", UserID: "u-1"}, nil)
		sessions.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)

		claims, err := uc.Verify(context.Background(), "signed-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "u-1" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	t.Run("existing account is untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "admin@clicknova.in").Return(entities.User{ID: "u-1"}, nil)

		if err := uc.EnsureAdmin(context.Background(), "admin@clicknova.in", "s3cret!", "Admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("seeds a hashed admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "admin@clicknova.in").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash == "" || u.PasswordHash == "s3cret!" {
					t.Fatalf("expected a bcrypt hash, got %q", u.PasswordHash)
				}
				if !auth.CheckPassword(u.PasswordHash, "s3cret!") {
					t.Fatalf("hash does not verify")
				}
				if u.Role != "admin" {
					t.Fatalf("expected admin role, got %s", u.Role)
				}
				return u, nil
			},
		)

		if err := uc.EnsureAdmin(context.Background(), "Admin@clicknova.in", "s3cret!", "Admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
