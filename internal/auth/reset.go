package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ResetTokenTTL = 15 * time.Minute

// NewResetToken signs a short-lived password-reset token. Reset tokens are
// deliberately separate from session tokens: they are self-contained, bound
// to the account's current password hash so a completed reset invalidates
// any other outstanding token.
func NewResetToken(secret string, userID uint, passwordHash string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"pwd": Digest(passwordHash),
		"exp": time.Now().Add(ResetTokenTTL).Unix(),
		"iat": time.Now().Unix(),
		"use": "password_reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken validates a reset token and returns the user id and the
// password-hash digest it was bound to.
func ParseResetToken(secret, tokenString string) (userID uint, pwdDigest string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	if use, _ := claims["use"].(string); use != "password_reset" {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := claims["sub"].(float64)
	pwd, ok2 := claims["pwd"].(string)
	if !ok1 || !ok2 {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	return uint(sub), pwd, nil
}
