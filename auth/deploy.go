package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gochat-dev/gochat/errors"
)

// CookieName is the name under which the auth cookie is attached.
const CookieName = "gochat_auth_cookie"

// developmentEnv is the environment marker that disables the Secure
// attribute so the cookie works over plain HTTP during local development.
const developmentEnv = "development"

// Deployer attaches the auth cookie to an outgoing response with its
// security attributes: HttpOnly, SameSite=Lax, path "/", Secure outside
// development, and a Max-Age equal to the refresh token lifetime.
type Deployer struct {
	environment string
	maxAge      int
}

// NewDeployer validates the configuration and creates a Deployer for the
// given environment.
func NewDeployer(cfg Config, environment string) (*Deployer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Deployer{
		environment: environment,
		maxAge:      int(time.Duration(cfg.RefreshExpiryHours) * time.Hour / time.Second),
	}, nil
}

// Deploy attaches value as the auth cookie on the response.
// A nil context is a caller wiring defect and fails with a configuration
// error; there is no other failure mode.
func (d *Deployer) Deploy(c *gin.Context, value string) error {
	if c == nil {
		return errors.Configuration("cookie deploy requires a response context")
	}
	d.set(c, value, d.maxAge)
	return nil
}

// Clear expires the auth cookie on the client.
func (d *Deployer) Clear(c *gin.Context) error {
	if c == nil {
		return errors.Configuration("cookie clear requires a response context")
	}
	d.set(c, "", -1)
	return nil
}

func (d *Deployer) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", d.environment != developmentEnv, true)
}
