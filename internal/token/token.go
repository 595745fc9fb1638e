// Package token issues and verifies the signed session tokens handed out
// at login. Tokens are HS256 JWTs carrying the user identity and a fixed
// validity window; there is no revocation, they simply expire.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was well formed and correctly signed
	// but its validity window has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid means the token is malformed, carries a bad signature,
	// or uses an unexpected signing method.
	ErrInvalid = errors.New("token invalid")
)

// Claims is the claim set embedded in issued tokens. The subject holds
// the user ID in decimal form.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// UserID returns the user ID carried in the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject claim", ErrInvalid)
	}
	return id, nil
}

// Issuer signs and verifies session tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer signing with secret; issued tokens expire
// after ttl.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window of issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token identifying the given user.
func (i *Issuer) Issue(userID int64, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Name: name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It returns ErrExpired for
// tokens past their validity window and ErrInvalid for anything
// malformed, tampered with, or signed differently.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
