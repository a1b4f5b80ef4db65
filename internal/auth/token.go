// Package auth issues and verifies the bearer tokens protecting the API
// and hashes profile passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 30 * 24 * time.Hour

var (
	ErrTokenMissing = errors.New("the request is not authorized")
	ErrTokenExpired = errors.New("the token has expired")
	ErrTokenInvalid = errors.New("the token is not valid")
)

// Claims is the payload carried by every token.
type Claims struct {
	ProfileID uint64 `json:"id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies tokens with a shared secret.
type Tokens struct {
	secret []byte
}

// New returns a Tokens instance using the given signing secret.
func New(secret string) Tokens {
	return Tokens{secret: []byte(secret)}
}

// Issue signs a token for the profile, valid for TokenLifetime.
func (t Tokens) Issue(profileID uint64, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		ProfileID: profileID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the token signature and expiry and returns the claims.
//
// Expired tokens and tokens that fail verification return distinct
// errors so the API can tell callers why they were rejected.
func (t Tokens) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrTokenInvalid
	}

	return *claims, nil
}
