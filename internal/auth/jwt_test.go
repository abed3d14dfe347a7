package auth

import (
	"testing"
	"time"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", "clicknova-admin", time.Hour)

	token, issued, err := svc.Issue("user-1", "admin@clicknova.in", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if issued.TokenID == "" {
		t.Fatal("expected a token id")
	}

	parsed, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != "user-1" {
		t.Errorf("expected user id user-1, got %s", parsed.UserID)
	}
	if parsed.Email != "admin@clicknova.in" {
		t.Errorf("expected issued email, got %s", parsed.Email)
	}
	if parsed.Role != "admin" {
		t.Errorf("expected role admin, got %s", parsed.Role)
	}
	if parsed.TokenID != issued.TokenID {
		t.Errorf("expected token id %s, got %s", issued.TokenID, parsed.TokenID)
	}
}

func TestJWTService_ParseRejectsWrongSecret(t *testing.T) {
	issuing := NewJWTService("secret-a", "clicknova-admin", time.Hour)
	verifying := NewJWTService("secret-b", "clicknova-admin", time.Hour)

	token, _, err := issuing.Issue("user-1", "admin@clicknova.in", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifying.Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTService_ParseRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "clicknova-admin", -time.Minute)

	token, _, err := svc.Issue("user-1", "admin@clicknova.in", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Parse(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_ParseRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "clicknova-admin", time.Hour)

	if _, err := svc.Parse("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "s3cret!") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
