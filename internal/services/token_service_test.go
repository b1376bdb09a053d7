package services

import (
	"testing"

	"errorswag/internal/config"
)

func newTestTokenService(secret string) *TokenService {
	return NewTokenService(&config.Config{JWTSecret: secret})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService("unit-test-secret")

	payload := TokenPayload{ID: 42, Username: "jane", Email: "jane@example.com", Role: "admin"}
	token, err := svc.Sign(payload)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if *got != payload {
		t.Errorf("payload = %+v, want %+v", *got, payload)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService("unit-test-secret")

	token, err := svc.Sign(TokenPayload{ID: 1, Username: "jane", Email: "jane@example.com", Role: "user"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := svc.Verify(token + "x"); err != ErrInvalidToken {
		t.Errorf("tampered token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := newTestTokenService("secret-a").Sign(TokenPayload{ID: 1})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := newTestTokenService("secret-b").Verify(token); err != ErrInvalidToken {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService("unit-test-secret")
	if _, err := svc.Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("garbage token: err = %v, want ErrInvalidToken", err)
	}
}
