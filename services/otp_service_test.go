package services

import (
	"errors"
	"testing"
	"time"
)

func TestOTPVerifyHappyPath(t *testing.T) {
	svc := NewOTPService(time.Minute)

	code, err := svc.Issue("Alice@Example.com", "signup")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(code) != otpLength {
		t.Fatalf("code %q has length %d, want %d", code, len(code), otpLength)
	}

	// Email lookup is case insensitive.
	if err := svc.Verify("alice@example.com", "signup", code); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !svc.IsVerified("alice@example.com", "signup") {
		t.Error("email should be marked verified after a correct code")
	}

	// The code is single use.
	if err := svc.Verify("alice@example.com", "signup", code); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("second Verify = %v, want ErrOTPExpired", err)
	}
}

func TestOTPRejectsWrongCode(t *testing.T) {
	svc := NewOTPService(time.Minute)

	code, _ := svc.Issue("bob@example.com", "reset")
	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}

	if err := svc.Verify("bob@example.com", "reset", wrong); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("Verify = %v, want ErrOTPInvalid", err)
	}
	if svc.IsVerified("bob@example.com", "reset") {
		t.Error("email must not be verified after a wrong code")
	}

	// The right code still works afterwards.
	if err := svc.Verify("bob@example.com", "reset", code); err != nil {
		t.Errorf("Verify with correct code after a wrong attempt: %v", err)
	}
}

func TestOTPIntentsAreSeparate(t *testing.T) {
	svc := NewOTPService(time.Minute)

	code, _ := svc.Issue("carol@example.com", "signup")
	if err := svc.Verify("carol@example.com", "reset", code); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("Verify with wrong intent = %v, want ErrOTPExpired", err)
	}
	if err := svc.Verify("carol@example.com", "signup", code); err != nil {
		t.Errorf("Verify with right intent: %v", err)
	}
	if svc.IsVerified("carol@example.com", "reset") {
		t.Error("reset intent must not be verified by a signup code")
	}
}

func TestOTPExpires(t *testing.T) {
	svc := NewOTPService(20 * time.Millisecond)

	code, _ := svc.Issue("dave@example.com", "signup")
	time.Sleep(60 * time.Millisecond)

	if err := svc.Verify("dave@example.com", "signup", code); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("Verify after expiry = %v, want ErrOTPExpired", err)
	}
}

func TestOTPConsumeClearsVerification(t *testing.T) {
	svc := NewOTPService(time.Minute)

	code, _ := svc.Issue("erin@example.com", "signup")
	if err := svc.Verify("erin@example.com", "signup", code); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	svc.Consume("erin@example.com", "signup")
	if svc.IsVerified("erin@example.com", "signup") {
		t.Error("verification mark should be gone after Consume")
	}
}
