package service

import (
	"errors"
	"time"

	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/pkg/jwt"

	"github.com/google/uuid"
)

// Demo access gate: a hardcoded PIN followed by a hardcoded one-time code
// behind a simulated SMS delay. This is a demonstration flow, not a security
// boundary; do not extend it with hashing or rate limiting.
const (
	managerPIN  = "2015"
	oneTimeCode = "123456"

	// Fixed delay standing in for the SMS round trip.
	codeSendDelay = 1500 * time.Millisecond

	maskedPhone = "***-***-8892"
)

var (
	ErrInvalidPIN  = errors.New("incorrect PIN")
	ErrInvalidCode = errors.New("invalid verification code")
)

type AuthService interface {
	// RequestCode validates the PIN and simulates sending the one-time code.
	// Returns the masked destination phone for display.
	RequestCode(pin string) (string, error)
	// Verify checks PIN and code together, flips the stored auth flag and
	// issues a session token.
	Verify(pin, code string) (string, error)
	Logout() error
	IsAuthenticated() bool
}

type authService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) RequestCode(pin string) (string, error) {
	if pin != managerPIN {
		return "", ErrInvalidPIN
	}
	time.Sleep(codeSendDelay)
	return maskedPhone, nil
}

func (s *authService) Verify(pin, code string) (string, error) {
	if pin != managerPIN {
		return "", ErrInvalidPIN
	}
	if code != oneTimeCode {
		return "", ErrInvalidCode
	}

	if err := s.store.SetAuthenticated(true); err != nil {
		return "", err
	}
	return jwt.GenerateToken(uuid.NewString())
}

func (s *authService) Logout() error {
	return s.store.SetAuthenticated(false)
}

func (s *authService) IsAuthenticated() bool {
	return s.store.IsAuthenticated()
}
