package auth

import (
	"context"

	"github.com/gochat-dev/gochat/auth/password"
	"github.com/gochat-dev/gochat/errors"
	"github.com/gochat-dev/gochat/logger"
)

// dummyVerificationHash is a syntactically valid argon2id hash (default
// cost parameters, zeroed salt and digest) that matches no password. It
// exists so a login attempt against a nonexistent account still pays the
// full verification cost.
const dummyVerificationHash = "$argon2id$v=19$m=65536,t=1,p=4$" +
	"AAAAAAAAAAAAAAAAAAAAAA$" +
	"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Verifier checks a plaintext password against a stored hash through the
// worker pool.
//
// When the upstream identity lookup found no user, callers pass an empty
// stored hash: the Verifier then runs the computation against a fixed dummy
// hash and reports a mismatch, so authentication latency does not reveal
// whether the account exists.
type Verifier struct {
	pool *password.Pool
	log  *logger.Logger
}

// NewVerifier creates a Verifier backed by the given pool.
func NewVerifier(pool *password.Pool, log *logger.Logger) *Verifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Verifier{pool: pool, log: log.WithComponent("verifier")}
}

// VerifyPassword reports whether plaintext matches storedHash.
// A mismatch is (false, nil). A malformed stored hash is returned as an
// error and logged as a data-integrity signal.
func (v *Verifier) VerifyPassword(ctx context.Context, plaintext, storedHash string) (bool, error) {
	if storedHash == "" {
		if _, err := v.pool.Verify(ctx, plaintext, dummyVerificationHash); err != nil {
			return false, err
		}
		return false, nil
	}

	ok, err := v.pool.Verify(ctx, plaintext, storedHash)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeInvalidHashFormat) {
			v.log.WithError(err).Error("stored credential hash is malformed")
			return false, err
		}
		return false, err
	}
	return ok, nil
}
