package auth

import (
	"math"
	"time"

	"github.com/gochat-dev/gochat/errors"
)

// maxExpiryHours bounds configured expiries so that the expiry arithmetic
// can never overflow a time.Duration. A value past this bound is a
// configuration mistake, caught at startup rather than per request.
const maxExpiryHours = uint(math.MaxInt64 / int64(time.Hour))

const maxOTPExpiryMinutes = uint(math.MaxInt64 / int64(time.Minute))

// Config holds the auth subsystem configuration. It is constructed once at
// startup, validated, and shared by reference across all requests.
type Config struct {
	// Secret is the HMAC key used to sign every token.
	Secret string `yaml:"secret" mapstructure:"secret" validate:"required"`

	// AccessExpiryHours is the access token lifetime (default: 1).
	AccessExpiryHours uint `yaml:"access_expiry_hours" mapstructure:"access_expiry_hours"`

	// RefreshExpiryHours is the refresh token lifetime; it also bounds the
	// auth cookie Max-Age (default: 24).
	RefreshExpiryHours uint `yaml:"refresh_expiry_hours" mapstructure:"refresh_expiry_hours"`

	// OTPExpiryMinutes is the one-time-password token lifetime (default: 5).
	OTPExpiryMinutes uint `yaml:"otp_expiry_minutes" mapstructure:"otp_expiry_minutes"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
// The secret has no default; a missing secret fails validation.
func (c *Config) ApplyDefaults() {
	if c.AccessExpiryHours == 0 {
		c.AccessExpiryHours = 1
	}
	if c.RefreshExpiryHours == 0 {
		c.RefreshExpiryHours = 24
	}
	if c.OTPExpiryMinutes == 0 {
		c.OTPExpiryMinutes = 5
	}
}

// Validate checks the configuration. The subsystem refuses to operate on an
// invalid config; every failure here is startup-fatal.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.Configuration("auth.secret is required")
	}
	if c.AccessExpiryHours > maxExpiryHours {
		return errors.Configuration("auth.access_expiry_hours overflows the expiry arithmetic")
	}
	if c.RefreshExpiryHours > maxExpiryHours {
		return errors.Configuration("auth.refresh_expiry_hours overflows the expiry arithmetic")
	}
	if c.OTPExpiryMinutes > maxOTPExpiryMinutes {
		return errors.Configuration("auth.otp_expiry_minutes overflows the expiry arithmetic")
	}
	return nil
}

// AccessTTL returns the access token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpiryHours) * time.Hour
}

// RefreshTTL returns the refresh token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshExpiryHours) * time.Hour
}

// OTPTTL returns the one-time-password token lifetime.
func (c *Config) OTPTTL() time.Duration {
	return time.Duration(c.OTPExpiryMinutes) * time.Minute
}
