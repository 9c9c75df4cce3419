package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("alice@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	email, err := ParseAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if email != "alice@example.com" {
		t.Errorf("subject = %q, want alice@example.com", email)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := CreateAccessToken("alice@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(token, "other-secret"); err == nil {
		t.Error("expected an error for a token signed with a different secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := CreateAccessToken("alice@example.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(token, testSecret); err == nil {
		t.Error("expected an error for an expired token")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseAccessToken("not.a.token", testSecret); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
