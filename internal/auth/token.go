package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/models"
)

const TokenTTL = 72 * time.Hour

// NewToken mints one opaque bearer token. The client receives the plaintext;
// the database only ever sees the digest.
func NewToken() (plaintext string, digest string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}

	plaintext = uuid.NewString() + hex.EncodeToString(buf)
	return plaintext, Digest(plaintext), nil
}

func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Issue stores a fresh token for the user and returns the plaintext.
func Issue(ctx context.Context, db *gorm.DB, userID uint) (string, error) {
	plaintext, digest, err := NewToken()
	if err != nil {
		return "", err
	}

	token := models.AuthToken{
		UserID:    userID,
		Digest:    digest,
		ExpiresAt: time.Now().Add(TokenTTL),
	}
	if err := db.WithContext(ctx).Create(&token).Error; err != nil {
		return "", err
	}

	return plaintext, nil
}

// Resolve maps a presented bearer token back to its user. Expired rows are
// treated as missing.
func Resolve(ctx context.Context, db *gorm.DB, plaintext string) (*models.User, error) {
	var token models.AuthToken
	if err := db.WithContext(ctx).
		Preload("User").
		Where("digest = ? AND expires_at > ?", Digest(plaintext), time.Now()).
		First(&token).Error; err != nil {
		return nil, err
	}

	return &token.User, nil
}

// Revoke deletes the token matching the presented plaintext (logout).
func Revoke(ctx context.Context, db *gorm.DB, plaintext string) error {
	return db.WithContext(ctx).
		Where("digest = ?", Digest(plaintext)).
		Delete(&models.AuthToken{}).Error
}

// RevokeAll deletes every token the user holds (logout everywhere).
func RevokeAll(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.AuthToken{}).Error
}
