package auth

import (
	"testing"

	"github.com/pingreng/pingr-server/internal/shared"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Issue("user-123", "marcus", "marcus@example.com", secret)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := Verify(tok, secret)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q", claims.UserID)
	}
	if claims.Username != "marcus" {
		t.Fatalf("Username mismatch: got %q", claims.Username)
	}
	if claims.Email != "marcus@example.com" {
		t.Fatalf("Email mismatch: got %q", claims.Email)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue("u2", "someone", "a@b.co", []byte("right-secret"))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = Verify(tok, []byte("wrong-secret"))
	if err != shared.ErrInvalidToken {
		t.Fatalf("expected shared.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := Verify("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
