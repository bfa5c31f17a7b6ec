package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the minimal identity projection needed for token issuance.
// It is not the persisted user record.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Claims is the payload of a signed token: subject identity plus its
// validity window. exp and iat are serialized as integer UTC seconds.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// newClaims builds a claims set for user valid from now until now+ttl.
func newClaims(user User, now time.Time, ttl time.Duration) Claims {
	return Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
}

// TokenSet carries the artifacts of one Generate call. Exactly one track is
// populated: access+refresh (+auth cookie) for KindAuth, or the OTP token
// for KindOneTimePassword. It is request-scoped and discarded once the
// response is sent.
type TokenSet struct {
	AccessToken          string `json:"access_token,omitempty"`
	RefreshToken         string `json:"refresh_token,omitempty"`
	OneTimePasswordToken string `json:"one_time_password_token,omitempty"`
	AuthCookie           string `json:"auth_cookie,omitempty"`
}
