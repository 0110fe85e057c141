package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
)

// OTP verification failures.
var (
	ErrOTPExpired = errors.New("otp expired or not issued")
	ErrOTPInvalid = errors.New("invalid otp")
)

type otpEntry struct {
	code    string
	expires time.Time
}

// OTPService issues and verifies one-time codes for phone login. Codes
// live in process memory with a short expiry; delivery goes to the log
// in place of an SMS gateway.
type OTPService struct {
	mu     sync.Mutex
	codes  map[string]otpEntry
	ttl    time.Duration
	logger *zap.Logger
}

// NewOTPService constructs an OTPService.
func NewOTPService(ttl time.Duration, logger *zap.Logger) *OTPService {
	return &OTPService{
		codes:  make(map[string]otpEntry),
		ttl:    ttl,
		logger: logger,
	}
}

// Issue generates a six digit code for the phone number, replacing any
// code previously issued to it.
func (s *OTPService) Issue(phone string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.codes[phone] = otpEntry{code: code, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	// Stand-in for an SMS gateway.
	s.logger.Info("otp issued", zap.String("phone", phone), zap.String("code", code))
	return nil
}

// Verify checks the code for the phone number and consumes it on
// success.
func (s *OTPService) Verify(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phone]
	if !ok || time.Now().After(entry.expires) {
		return ErrOTPExpired
	}
	if entry.code != code {
		return ErrOTPInvalid
	}

	delete(s.codes, phone)
	return nil
}

func generateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
