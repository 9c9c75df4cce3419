package utils

import (
	"strings"
	"testing"
)

func TestGenerateDoctorCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateDoctorCode(6)
		if err != nil {
			t.Fatalf("GenerateDoctorCode: %v", err)
		}
		if len(code) != 6 {
			t.Errorf("code %q has length %d, want 6", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Errorf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Errorf("only %d distinct codes out of 50, generator looks broken", len(seen))
	}
}

func TestGenerateOTPIsNumeric(t *testing.T) {
	otp, err := GenerateOTP(6)
	if err != nil {
		t.Fatalf("GenerateOTP: %v", err)
	}
	if len(otp) != 6 {
		t.Errorf("otp %q has length %d, want 6", otp, len(otp))
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			t.Errorf("otp %q contains non-digit %q", otp, r)
		}
	}
}
