package auth

import (
	"context"
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	deriver := NewCookieDeriver("test_secret", newTestPool(t))

	value, err := deriver.Derive(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(value, cookieValuePrefix+cookieValueDelimiter) {
		t.Errorf("expected prefix tag, got %q", value)
	}

	parts := strings.Split(value, cookieValueDelimiter)
	if len(parts) != 3 {
		t.Fatalf("expected prefix and two hash halves, got %d parts", len(parts))
	}
	for _, half := range parts[1:] {
		if !strings.HasPrefix(half, "$argon2id$") {
			t.Errorf("expected argon2id hash half, got %q", half)
		}
	}
}

func TestDeriveIsNotStable(t *testing.T) {
	// Each half is freshly salted, so the derived value differs on every
	// call for the same inputs. The value is opaque and never re-verified.
	deriver := NewCookieDeriver("test_secret", newTestPool(t))
	ctx := context.Background()

	first, err := deriver.Derive(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := deriver.Derive(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected distinct derivations for the same inputs")
	}
}

func TestDeriveCanceledContext(t *testing.T) {
	deriver := NewCookieDeriver("test_secret", newTestPool(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := deriver.Derive(ctx, "test@example.com"); err == nil {
		t.Error("expected error for canceled context")
	}
}
