package config

import (
	"fmt"

	"github.com/gochat-dev/gochat/auth"
	"github.com/gochat-dev/gochat/auth/password"
	"github.com/gochat-dev/gochat/errors"
	"github.com/gochat-dev/gochat/logger"
	"github.com/gochat-dev/gochat/validation"
)

// ServiceConfig contains the essential fields every service needs.
type ServiceConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to the service configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates the service configuration.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return errors.Configuration("service.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return errors.Configuration(fmt.Sprintf("service.environment must be one of %v (got: %s)", validEnvs, c.Environment))
}

// AppConfig is the root configuration for a gochat service.
type AppConfig struct {
	Service  ServiceConfig       `yaml:"service" mapstructure:"service"`
	Logging  logger.Config       `yaml:"logging" mapstructure:"logging"`
	Auth     auth.Config         `yaml:"auth" mapstructure:"auth"`
	Password password.Config     `yaml:"password" mapstructure:"password"`
	Pool     password.PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// ApplyDefaults applies defaults to every section.
func (c *AppConfig) ApplyDefaults() {
	c.Service.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.Pool.ApplyDefaults()
}

// Validate validates every section. Any failure here is startup-fatal.
func (c *AppConfig) Validate() error {
	if err := c.Service.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return err
	}
	if err := c.Pool.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
