package security

import (
	"errors"
	"testing"
	"time"
)

func TestShareTokenRoundTrip(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", time.Hour)

	token, err := signer.Sign("ab-cd", "abc123")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	password, err := signer.Parse(token, "ab-cd")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if password != "abc123" {
		t.Errorf("password = %q, want %q", password, "abc123")
	}
}

func TestShareTokenRequiresSubPath(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", time.Hour)
	if _, err := signer.Sign("", "abc123"); err == nil {
		t.Error("expected error signing token without a sub-path")
	}
}

func TestShareTokenRejectsExpired(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", -time.Minute)

	token, err := signer.Sign("ab-cd", "abc123")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := signer.Parse(token, "ab-cd"); !errors.Is(err, ErrInvalidShareToken) {
		t.Errorf("expected ErrInvalidShareToken for expired token, got %v", err)
	}
}

func TestShareTokenRejectsForeignSecret(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", time.Hour)
	other := NewShareTokenSigner("other-secret", time.Hour)

	token, err := other.Sign("ab-cd", "abc123")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := signer.Parse(token, "ab-cd"); !errors.Is(err, ErrInvalidShareToken) {
		t.Errorf("expected ErrInvalidShareToken for foreign signature, got %v", err)
	}
}

func TestShareTokenRejectsWrongWebsite(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", time.Hour)

	token, err := signer.Sign("ab-cd", "abc123")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := signer.Parse(token, "ef-gh"); !errors.Is(err, ErrShareTokenMismatch) {
		t.Errorf("expected ErrShareTokenMismatch, got %v", err)
	}
}

func TestShareTokenRejectsGarbage(t *testing.T) {
	signer := NewShareTokenSigner("test-secret", time.Hour)

	if _, err := signer.Parse("not-a-token", "ab-cd"); !errors.Is(err, ErrInvalidShareToken) {
		t.Errorf("expected ErrInvalidShareToken, got %v", err)
	}
}
