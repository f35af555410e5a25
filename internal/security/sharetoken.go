package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidShareToken  = errors.New("invalid share token")
	ErrShareTokenMismatch = errors.New("share token issued for a different website")
)

// ShareTokenSigner signs and verifies the time-limited tokens embedded in
// share emails. A token carries the website sub-path and its password, so a
// recipient landing on the share link gets the password persisted as their
// credential without typing it; the access gate still re-evaluates the
// credential on the next request as usual.
type ShareTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

type shareClaims struct {
	SubPath  string `json:"sub_path"`
	Password string `json:"password"`
	jwt.RegisteredClaims
}

// NewShareTokenSigner creates a signer using HMAC-SHA256 with the given
// secret and token lifetime.
func NewShareTokenSigner(secret string, ttl time.Duration) *ShareTokenSigner {
	return &ShareTokenSigner{secret: []byte(secret), ttl: ttl}
}

// Sign issues a share token for the given website sub-path and password.
func (s *ShareTokenSigner) Sign(subPath, password string) (string, error) {
	if subPath == "" {
		return "", fmt.Errorf("sub-path is required")
	}

	now := time.Now()
	claims := shareClaims{
		SubPath:  subPath,
		Password: password,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return signed, nil
}

// Parse validates a share token and returns the embedded password. The
// token must be signed with this signer's secret, unexpired, and issued for
// the given sub-path.
func (s *ShareTokenSigner) Parse(tokenString, subPath string) (string, error) {
	claims := &shareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidShareToken
	}
	if claims.SubPath != subPath {
		return "", ErrShareTokenMismatch
	}
	return claims.Password, nil
}
