package services

import (
	"errors"
	"testing"
	"time"

	relay_errors "relay-chat/pkg/errors"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), 0)

	tok, err := svc.Issue("user-123", "alice@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("id mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "alice@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "alice@x.com")
	}
}

func TestTokenService_NonExpiringByDefault(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), 0)

	tok, err := svc.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), -1*time.Second)

	tok, err := svc.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Validate(tok); !errors.Is(err, relay_errors.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), 0)
	validator := NewTokenService([]byte("wrong-secret"), 0)

	tok, err := issuer.Issue("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := validator.Validate(tok); !errors.Is(err, relay_errors.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for wrong secret, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), 0)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := svc.Validate(tok); !errors.Is(err, relay_errors.ErrAuthenticationFailed) {
			t.Fatalf("token %q: expected ErrAuthenticationFailed, got %v", tok, err)
		}
	}
}
