package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

type Claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens. The user ID
// travels in the subject claim, the role in user_type.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expirySeconds int64) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (tm *TokenManager) Generate(userID, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the user ID and type.
func (tm *TokenManager) Verify(tokenString string) (string, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.Unauthorized("Invalid or expired token", err)
	}

	return claims.Subject, claims.UserType, nil
}
