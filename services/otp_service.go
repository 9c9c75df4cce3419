package services

import (
	"errors"
	"strings"
	"time"

	"eyenova-backend/utils"

	"github.com/patrickmn/go-cache"
)

var (
	ErrOTPExpired = errors.New("otp expired or never requested")
	ErrOTPInvalid = errors.New("otp does not match")
)

const otpLength = 6

// OTPService issues and verifies one-time codes for signup and password
// reset. Codes live in an in-memory cache and expire on their own; a
// successful verification marks the email so the follow-up action can
// consume the mark exactly once.
type OTPService struct {
	codes    *cache.Cache
	verified *cache.Cache
}

func NewOTPService(ttl time.Duration) *OTPService {
	return &OTPService{
		codes:    cache.New(ttl, 2*ttl),
		verified: cache.New(ttl, 2*ttl),
	}
}

func otpKey(email, intent string) string {
	return strings.ToLower(email) + ":" + intent
}

// Issue generates a fresh code for the email and intent, replacing any
// previous one.
func (s *OTPService) Issue(email, intent string) (string, error) {
	code, err := utils.GenerateOTP(otpLength)
	if err != nil {
		return "", err
	}
	s.codes.SetDefault(otpKey(email, intent), code)
	return code, nil
}

// Verify checks a submitted code. On success the code is consumed and the
// email is marked verified for the given intent.
func (s *OTPService) Verify(email, intent, code string) error {
	key := otpKey(email, intent)
	stored, found := s.codes.Get(key)
	if !found {
		return ErrOTPExpired
	}
	if stored.(string) != strings.TrimSpace(code) {
		return ErrOTPInvalid
	}
	s.codes.Delete(key)
	s.verified.SetDefault(key, true)
	return nil
}

// IsVerified reports whether the email passed verification for the intent.
func (s *OTPService) IsVerified(email, intent string) bool {
	_, found := s.verified.Get(otpKey(email, intent))
	return found
}

// Consume clears the verified mark after the protected action succeeds.
func (s *OTPService) Consume(email, intent string) {
	s.verified.Delete(otpKey(email, intent))
}
