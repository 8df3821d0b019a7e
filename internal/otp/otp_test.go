package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markeugine/atelier-backend/internal/httperr"
)

// memStore ignores TTLs; expiry behavior belongs to redis and is not under
// test here.
type memStore struct {
	codes    map[string]string
	verified map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		codes:    make(map[string]string),
		verified: make(map[string]bool),
	}
}

func (m *memStore) SetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	m.codes[email] = code
	return nil
}

func (m *memStore) GetCode(ctx context.Context, email string) (string, error) {
	code, ok := m.codes[email]
	if !ok {
		return "", errors.New("code not found")
	}
	return code, nil
}

func (m *memStore) DeleteCode(ctx context.Context, email string) error {
	delete(m.codes, email)
	return nil
}

func (m *memStore) MarkVerified(ctx context.Context, email string, ttl time.Duration) error {
	m.verified[email] = true
	return nil
}

func (m *memStore) IsVerified(ctx context.Context, email string) (bool, error) {
	return m.verified[email], nil
}

func (m *memStore) ClearVerified(ctx context.Context, email string) error {
	delete(m.verified, email)
	return nil
}

var _ Store = (*memStore)(nil)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		// Always six digits, leading zeros kept.
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestVerifyFlow(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "client@example.com")
	require.NoError(t, err)

	// Wrong code does not consume the stored one.
	err = svc.Verify(ctx, "client@example.com", "000000x")
	assert.Equal(t, "otp_mismatch", httperr.BusinessCode(err))

	require.NoError(t, svc.Verify(ctx, "client@example.com", code))

	// The code is single-use.
	err = svc.Verify(ctx, "client@example.com", code)
	assert.Equal(t, "otp_expired", httperr.BusinessCode(err))

	// The registration window stays open until consumed.
	require.NoError(t, svc.RequireVerified(ctx, "client@example.com"))
	require.NoError(t, svc.RequireVerified(ctx, "client@example.com"))

	require.NoError(t, svc.Consume(ctx, "client@example.com"))
	err = svc.RequireVerified(ctx, "client@example.com")
	assert.Equal(t, "email_not_verified", httperr.BusinessCode(err))
}

func TestVerify_NoOutstandingCode(t *testing.T) {
	svc := NewService(newMemStore())

	err := svc.Verify(context.Background(), "nobody@example.com", "123456")
	assert.Equal(t, "otp_expired", httperr.BusinessCode(err))
}

func TestIssue_ReplacesOutstandingCode(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	first, err := svc.Issue(ctx, "client@example.com")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "client@example.com")
	require.NoError(t, err)

	if first != second {
		err = svc.Verify(ctx, "client@example.com", first)
		assert.Equal(t, "otp_mismatch", httperr.BusinessCode(err))
	}
	require.NoError(t, svc.Verify(ctx, "client@example.com", second))
}
