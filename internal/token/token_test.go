package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bkaddour/authd/internal/token"
)

const testSecret = "test-secret-key-for-token-unit-tests"

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer(testSecret, time.Hour)

	signed, err := issuer.Issue(42, "alice01")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	userID, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user ID 42, got %d", userID)
	}
	if claims.Name != "alice01" {
		t.Fatalf("expected name alice01, got %q", claims.Name)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected iat and exp claims to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h validity window, got %s", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer(testSecret, -1*time.Second)

	signed, err := issuer.Issue(1, "expired")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = issuer.Verify(signed)
	if !errors.Is(err, token.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer(testSecret, time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	if !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer(testSecret, time.Hour)

	signed, err := issuer.Issue(7, "tamper")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := signed[:len(signed)-5] + "XXXXX"
	_, err = issuer.Verify(tampered)
	if !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for tampered token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := token.NewIssuer("right-secret-right-secret-right!", time.Hour).Issue(9, "secret")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = token.NewIssuer("wrong-secret-wrong-secret-wrong!", time.Hour).Verify(signed)
	if !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for wrong secret, got %v", err)
	}
}

func TestVerify_ExpiredIsNotInvalid(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer(testSecret, -1*time.Second)

	signed, err := issuer.Issue(1, "expired")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Expiry must be distinguishable from a bad signature.
	_, err = issuer.Verify(signed)
	if errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected expired token not to map to ErrInvalid, got %v", err)
	}
}
