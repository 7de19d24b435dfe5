// Package auth implements the two credential primitives of the server:
// HS256 bearer tokens and bcrypt password digests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/projecthub/internal/common"
)

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// GenerateToken issues a signed HS256 token carrying the user identity and
// an expiration of now + validityDuration.
func GenerateToken(userID, email, name string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
		Name:   name,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiration of tokenString and
// returns the embedded claims. Failures are reported as the sentinel
// errors common.ErrTokenExpired, common.ErrTokenMalformed and
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
