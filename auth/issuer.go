package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gochat-dev/gochat/auth/password"
	"github.com/gochat-dev/gochat/errors"
	"github.com/gochat-dev/gochat/logger"
)

const meterName = "github.com/gochat-dev/gochat/auth"

// Kind selects which track of tokens Generate produces.
type Kind string

const (
	// KindAuth issues an access/refresh token pair plus the auth cookie.
	KindAuth Kind = "auth"
	// KindOneTimePassword issues a single short-lived OTP token.
	KindOneTimePassword Kind = "one_time_password"
)

// Issuer builds and signs claim sets for access, refresh, and
// one-time-password tokens. Signing is pure CPU work and runs inline;
// only the cookie derivation goes through the password pool.
type Issuer struct {
	cfg     Config
	deriver *CookieDeriver
	log     *logger.Logger
	issued  metric.Int64Counter
}

// NewIssuer validates the configuration and creates an Issuer.
// The pool is used for auxiliary cookie derivation.
func NewIssuer(cfg Config, pool *password.Pool, log *logger.Logger) (*Issuer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	meter := otel.Meter(meterName)
	issued, _ := meter.Int64Counter("gochat.auth.tokens_issued",
		metric.WithDescription("Token sets issued, by kind and status"))

	return &Issuer{
		cfg:     cfg,
		deriver: NewCookieDeriver(cfg.Secret, pool),
		log:     log.WithComponent("issuer"),
		issued:  issued,
	}, nil
}

// Generate produces the token set for the given kind.
//
// KindAuth returns an access token, a refresh token, and the auxiliary auth
// cookie. KindOneTimePassword returns only the OTP token. Any other kind is
// a caller defect and fails with an INVALID_TOKEN_KIND error; Generate
// never returns an empty token set with a nil error.
func (i *Issuer) Generate(ctx context.Context, kind Kind, user User) (TokenSet, error) {
	now := time.Now().UTC()

	var set TokenSet
	var err error
	switch kind {
	case KindAuth:
		set, err = i.generateAuthPair(ctx, user, now)
	case KindOneTimePassword:
		set, err = i.generateOTP(user, now)
	default:
		err = errors.InvalidTokenKind(string(kind))
	}

	i.count(ctx, kind, err)
	if err != nil {
		i.log.WithError(err).Error("token generation failed",
			logger.Fields(logger.FieldTokenKind, string(kind)))
		return TokenSet{}, err
	}

	i.log.Debug("token set issued", logger.Fields(logger.FieldTokenKind, string(kind)))
	return set, nil
}

func (i *Issuer) generateAuthPair(ctx context.Context, user User, now time.Time) (TokenSet, error) {
	access, err := i.sign(newClaims(user, now, i.cfg.AccessTTL()))
	if err != nil {
		return TokenSet{}, fmt.Errorf("access token: %w", err)
	}

	refresh, err := i.sign(newClaims(user, now, i.cfg.RefreshTTL()))
	if err != nil {
		return TokenSet{}, fmt.Errorf("refresh token: %w", err)
	}

	cookie, err := i.deriver.Derive(ctx, user.Email)
	if err != nil {
		return TokenSet{}, fmt.Errorf("auth cookie: %w", err)
	}

	return TokenSet{
		AccessToken:  access,
		RefreshToken: refresh,
		AuthCookie:   cookie,
	}, nil
}

func (i *Issuer) generateOTP(user User, now time.Time) (TokenSet, error) {
	otp, err := i.sign(newClaims(user, now, i.cfg.OTPTTL()))
	if err != nil {
		return TokenSet{}, fmt.Errorf("otp token: %w", err)
	}
	return TokenSet{OneTimePasswordToken: otp}, nil
}

// sign produces a compact HS256 JWS for the claims.
func (i *Issuer) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", errors.Signing(err)
	}
	return signed, nil
}

// Parse validates a token issued by this Issuer and returns its claims.
// The signing algorithm is pinned to HS256.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
			}
			return []byte(i.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Unauthorized("invalid token").WithCause(err)
	}
	if !token.Valid {
		return nil, errors.Unauthorized("invalid token")
	}
	return claims, nil
}

func (i *Issuer) count(ctx context.Context, kind Kind, err error) {
	status := "ok"
	if err != nil {
		status = string(errors.Code(err))
	}
	i.issued.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("status", status),
	))
}
