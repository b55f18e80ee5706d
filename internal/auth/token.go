package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated is returned for every token failure: missing,
// malformed, bad signature, expired. Callers never learn which.
var ErrUnauthenticated = errors.New("authentication required")

const tokenTTL = 24 * time.Hour

// TokenIssuer signs and verifies the HS256 session tokens handed out at
// signup and login.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue returns a signed token identifying userID, valid for 24 hours.
func (t *TokenIssuer) Issue(userID uint) (string, error) {
	return t.issueWithTTL(userID, tokenTTL)
}

func (t *TokenIssuer) issueWithTTL(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates tokenString and returns the user ID it
// carries. All failures collapse to ErrUnauthenticated.
func (t *TokenIssuer) Verify(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrUnauthenticated
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})

	if err != nil || !token.Valid {
		return 0, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrUnauthenticated
	}

	return uint(userID), nil
}
