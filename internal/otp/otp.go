package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/markeugine/atelier-backend/internal/httperr"
)

const (
	// How long a mailed code stays valid.
	CodeTTL = 10 * time.Minute
	// How long a verified email may proceed to registration.
	VerifiedTTL = 30 * time.Minute
)

// Store is the ephemeral backing for codes and the verified-email window.
// Production uses redis; tests use the in-memory fake.
type Store interface {
	SetCode(ctx context.Context, email, code string, ttl time.Duration) error
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error

	MarkVerified(ctx context.Context, email string, ttl time.Duration) error
	IsVerified(ctx context.Context, email string) (bool, error)
	ClearVerified(ctx context.Context, email string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GenerateCode returns a 6-digit numeric code with leading zeros kept.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue stores a fresh code for the email and returns it for delivery.
// Re-issuing replaces any outstanding code.
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	if err := s.store.SetCode(ctx, email, code, CodeTTL); err != nil {
		return "", err
	}

	return code, nil
}

// Verify consumes the code: one successful match deletes it and opens the
// registration window for the email.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	stored, err := s.store.GetCode(ctx, email)
	if err != nil {
		return httperr.ErrBusiness("otp_expired")
	}

	if stored != code {
		return httperr.ErrBusiness("otp_mismatch")
	}

	if err := s.store.DeleteCode(ctx, email); err != nil {
		return err
	}

	return s.store.MarkVerified(ctx, email, VerifiedTTL)
}

// RequireVerified checks the registration window without closing it, so a
// failed registration attempt can be retried within the 30 minutes.
func (s *Service) RequireVerified(ctx context.Context, email string) error {
	ok, err := s.store.IsVerified(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("email_not_verified")
	}
	return nil
}

// Consume closes the window after a successful registration.
func (s *Service) Consume(ctx context.Context, email string) error {
	return s.store.ClearVerified(ctx, email)
}
