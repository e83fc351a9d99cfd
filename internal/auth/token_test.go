package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/estivensal7/Moment-API/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := tm.Issue("user-123", "alice@example.com", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("Email mismatch: got %q", claims.Email)
	}
	if claims.Username != "alice" {
		t.Fatalf("Username mismatch: got %q", claims.Username)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("secret"), -1*time.Second)

	tok, err := tm.Issue("u1", "u1@example.com", "u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager([]byte("right-secret"), time.Hour).Issue("u2", "u2@example.com", "u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenManager([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager([]byte("k"), time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestIssue_TokensAreUnique(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("k"), time.Hour)

	a, err := tm.Issue("u", "u@example.com", "u")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	b, err := tm.Issue("u", "u@example.com", "u")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if a == b {
		t.Fatal("two issued tokens should differ (jti)")
	}
}
