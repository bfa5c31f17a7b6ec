package logger

import (
	stderrors "errors"
	"testing"

	"github.com/gochat-dev/gochat/errors"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestWithComponent(t *testing.T) {
	l := Nop().WithComponent("issuer")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Info("should not panic")
}

func TestWithError(t *testing.T) {
	l := Nop().WithError(stderrors.New("boom"))
	l.Error("should not panic")
}

func TestFields(t *testing.T) {
	m := Fields("operation", "hash", "job_id", "abc")
	if m["operation"] != "hash" {
		t.Errorf("expected operation 'hash', got %v", m["operation"])
	}
	if m["job_id"] != "abc" {
		t.Errorf("expected job_id 'abc', got %v", m["job_id"])
	}

	t.Run("odd arguments drop the trailing key", func(t *testing.T) {
		m := Fields("a", 1, "dangling")
		if len(m) != 1 {
			t.Errorf("expected 1 field, got %d", len(m))
		}
	})

	t.Run("non-string keys are skipped", func(t *testing.T) {
		m := Fields(42, "value", "ok", true)
		if _, found := m["ok"]; !found {
			t.Error("expected 'ok' field")
		}
		if len(m) != 1 {
			t.Errorf("expected 1 field, got %d", len(m))
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr && !errors.HasCode(err, errors.ErrCodeConfiguration) {
				t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp to default to true")
	}
}
