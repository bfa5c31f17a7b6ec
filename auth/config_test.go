package auth

import (
	"math"
	"testing"
	"time"

	"github.com/gochat-dev/gochat/errors"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Secret: "s"}
	cfg.ApplyDefaults()
	if cfg.AccessExpiryHours != 1 {
		t.Errorf("expected access default 1, got %d", cfg.AccessExpiryHours)
	}
	if cfg.RefreshExpiryHours != 24 {
		t.Errorf("expected refresh default 24, got %d", cfg.RefreshExpiryHours)
	}
	if cfg.OTPExpiryMinutes != 5 {
		t.Errorf("expected otp default 5, got %d", cfg.OTPExpiryMinutes)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		code errors.ErrorCode
	}{
		{"missing secret", Config{AccessExpiryHours: 1, RefreshExpiryHours: 24, OTPExpiryMinutes: 5}, errors.ErrCodeConfiguration},
		{"access overflow", Config{Secret: "s", AccessExpiryHours: math.MaxUint, RefreshExpiryHours: 24, OTPExpiryMinutes: 5}, errors.ErrCodeConfiguration},
		{"refresh overflow", Config{Secret: "s", AccessExpiryHours: 1, RefreshExpiryHours: math.MaxUint, OTPExpiryMinutes: 5}, errors.ErrCodeConfiguration},
		{"otp overflow", Config{Secret: "s", AccessExpiryHours: 1, RefreshExpiryHours: 24, OTPExpiryMinutes: math.MaxUint}, errors.ErrCodeConfiguration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		cfg := Config{Secret: "s", AccessExpiryHours: 1, RefreshExpiryHours: 24, OTPExpiryMinutes: 5}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConfigTTLs(t *testing.T) {
	cfg := Config{Secret: "s", AccessExpiryHours: 1, RefreshExpiryHours: 24, OTPExpiryMinutes: 5}
	if cfg.AccessTTL() != time.Hour {
		t.Errorf("expected 1h access TTL, got %v", cfg.AccessTTL())
	}
	if cfg.RefreshTTL() != 24*time.Hour {
		t.Errorf("expected 24h refresh TTL, got %v", cfg.RefreshTTL())
	}
	if cfg.OTPTTL() != 5*time.Minute {
		t.Errorf("expected 5m otp TTL, got %v", cfg.OTPTTL())
	}
}
