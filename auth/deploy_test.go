package auth

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gochat-dev/gochat/errors"
)

func deployCookie(t *testing.T, environment string) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	deployer, err := NewDeployer(testAuthConfig(), environment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := deployer.Deploy(c, "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestDeployDevelopment(t *testing.T) {
	cookie := deployCookie(t, "development")

	if cookie.Name != CookieName {
		t.Errorf("expected name %q, got %q", CookieName, cookie.Name)
	}
	if cookie.Value != "abc" {
		t.Errorf("expected value 'abc', got %q", cookie.Value)
	}
	if cookie.Path != "/" {
		t.Errorf("expected path '/', got %q", cookie.Path)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly")
	}
	if cookie.Secure {
		t.Error("expected Secure=false in development")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	// refresh expiry: 24h in seconds
	if cookie.MaxAge != 86400 {
		t.Errorf("expected MaxAge 86400, got %d", cookie.MaxAge)
	}
}

func TestDeployProduction(t *testing.T) {
	cookie := deployCookie(t, "production")
	if !cookie.Secure {
		t.Error("expected Secure=true outside development")
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly")
	}
}

func TestNewDeployerRejectsInvalidConfig(t *testing.T) {
	cfg := testAuthConfig()
	cfg.RefreshExpiryHours = math.MaxUint
	if _, err := NewDeployer(cfg, "production"); err == nil {
		t.Fatal("expected error")
	} else if !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
	}

	cfg = testAuthConfig()
	cfg.Secret = ""
	if _, err := NewDeployer(cfg, "production"); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestDeployNilContext(t *testing.T) {
	deployer, err := NewDeployer(testAuthConfig(), "production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := deployer.Deploy(nil, "abc"); err == nil {
		t.Error("expected error for nil context")
	}
	if err := deployer.Clear(nil); err == nil {
		t.Error("expected error for nil context")
	}
}

func TestClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	deployer, err := NewDeployer(testAuthConfig(), "production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := deployer.Clear(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" {
		t.Errorf("expected empty value, got %q", cookies[0].Value)
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", cookies[0].MaxAge)
	}
}
