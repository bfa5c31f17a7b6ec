package auth

import (
	"context"
	"fmt"

	"github.com/gochat-dev/gochat/auth/password"
)

const (
	// cookieValuePrefix tags every derived cookie value.
	cookieValuePrefix = "gochat"
	// cookieValueDelimiter separates the prefix and the two hash halves.
	cookieValueDelimiter = "____"
)

// CookieDeriver derives the opaque auxiliary cookie value from hashed
// identity material.
//
// The value is decorative: no verification of it exists anywhere in the
// subsystem. Session validity is enforced through the signed tokens; the
// client merely echoes this value back. Each half is freshly salted, so
// two derivations for the same user never match.
type CookieDeriver struct {
	secret string
	pool   *password.Pool
}

// NewCookieDeriver creates a deriver that hashes through the given pool.
func NewCookieDeriver(secret string, pool *password.Pool) *CookieDeriver {
	return &CookieDeriver{secret: secret, pool: pool}
}

// Derive hashes the email and the signing secret independently, each with
// its own fresh salt, and joins them under the fixed prefix tag.
func (d *CookieDeriver) Derive(ctx context.Context, email string) (string, error) {
	emailHash, err := d.pool.Hash(ctx, email)
	if err != nil {
		return "", fmt.Errorf("hash email: %w", err)
	}

	secretHash, err := d.pool.Hash(ctx, d.secret)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}

	return cookieValuePrefix + cookieValueDelimiter + emailHash + cookieValueDelimiter + secretHash, nil
}
