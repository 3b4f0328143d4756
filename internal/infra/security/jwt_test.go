package security

import (
	"errors"
	"testing"
	"time"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
)

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()

	mgr, err := NewTokenManager("test-secret", "subsidy-portal", ttl)
	if err != nil {
		t.Fatalf("NewTokenManager returned error: %v", err)
	}
	return mgr
}

func testAdmin() domain.User {
	return domain.User{
		ID:    "9fc6a8f2-6a48-4f5e-8d8e-0b6c6a1d54c1",
		Email: "admin@spyojana.com",
		Name:  "Admin User",
		Role:  domain.RoleAdmin,
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("  ", "subsidy-portal", time.Hour); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestSignAndParseRoundTrip(t *testing.T) {
	mgr := newTestManager(t, time.Hour)
	user := testAdmin()

	token, err := mgr.Sign(user)
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if claims.UserID != user.ID {
		t.Fatalf("expected uid %q, got %q", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected expiry claim")
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected token lifetime: %v", remaining)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	mgr := newTestManager(t, time.Nanosecond)

	token, err := mgr.Sign(testAdmin())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := mgr.Parse(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	mgr := newTestManager(t, time.Hour)

	other, err := NewTokenManager("another-secret", "subsidy-portal", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager returned error: %v", err)
	}

	token, err := other.Sign(testAdmin())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := mgr.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	mgr := newTestManager(t, time.Hour)

	for _, token := range []string{"", "   ", "not.a.jwt"} {
		if _, err := mgr.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
