package utils

import (
	"crypto/rand"
	"fmt"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateDoctorCode returns a random lowercase alphanumeric code of the
// given length, e.g. "1a45cb". Uniqueness is enforced by the caller against
// the users collection.
func GenerateDoctorCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate doctor code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// GenerateOTP returns a random numeric one-time password of the given length.
func GenerateOTP(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	for i, b := range buf {
		buf[i] = '0' + b%10
	}
	return string(buf), nil
}
