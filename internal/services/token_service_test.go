package services

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, testLogger())

	token, err := svc.Generate("acc-1", "jane@example.com", "customer", "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AccountID != "acc-1" || claims.Email != "jane@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Role != "customer" || claims.SessionID != "sess-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenWrongKeyRejected(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour, testLogger())
	verifier := NewTokenService("key-two", time.Hour, testLogger())

	token, err := issuer.Generate("acc-1", "jane@example.com", "customer", "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatal("expected validation to fail with a different key")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, testLogger())

	if _, err := svc.Validate("not-a-token"); err == nil {
		t.Fatal("expected validation to fail")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, testLogger())
	svc.ttl = -time.Minute

	token, err := svc.Generate("acc-1", "jane@example.com", "customer", "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
