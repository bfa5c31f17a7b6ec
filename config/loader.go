package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gochat-dev/gochat/errors"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// GOCHAT_AUTH__SECRET overrides auth.secret.
const envPrefix = "GOCHAT"

// configKeys lists every known configuration key so environment overrides
// are honored even when the key is absent from the config file.
var configKeys = []string{
	"service.name",
	"service.environment",
	"service.debug",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
	"logging.caller",
	"auth.secret",
	"auth.access_expiry_hours",
	"auth.refresh_expiry_hours",
	"auth.otp_expiry_minutes",
	"password.time",
	"password.memory",
	"password.threads",
	"password.salt_length",
	"password.key_length",
	"pool.workers",
	"pool.queue_size",
}

// LoaderOptions controls where Load looks for its sources.
type LoaderOptions struct {
	// ConfigFile is the base YAML config file path. When empty, Load
	// searches for config.yml in the working directory and ./config.
	ConfigFile string

	// Environment selects an optional overlay file named <environment>.yml
	// next to the base file, merged over it. When empty, the GOCHAT_ENV
	// environment variable is consulted.
	Environment string

	// EnvFile is an optional .env file loaded before anything else.
	// When empty, a ./.env file is loaded if present.
	EnvFile string
}

// Load reads, layers, defaults, and validates the service configuration.
// Sources are merged lowest to highest precedence: base file, environment
// overlay, local.yml overlay, then environment variables.
func Load(opts LoaderOptions) (*AppConfig, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Configuration(fmt.Sprintf("bind env for %s: %v", key, err))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Environment variables alone may carry a complete configuration;
		// only an unreadable file is fatal, a missing one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.Configuration(fmt.Sprintf("read config: %v", err))
		}
	} else if err := mergeOverlays(v, opts.Environment); err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Configuration(fmt.Sprintf("unmarshal config: %v", err))
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeOverlays layers the environment-specific and local override files
// over the base configuration. Overlays live next to the base file and are
// optional; a present but unreadable overlay is fatal.
func mergeOverlays(v *viper.Viper, environment string) error {
	if environment == "" {
		environment = os.Getenv(envPrefix + "_ENV")
	}

	dir := filepath.Dir(v.ConfigFileUsed())
	for _, name := range []string{environment, "local"} {
		if name == "" {
			continue
		}
		path := filepath.Join(dir, name+".yml")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return errors.Configuration(fmt.Sprintf("merge config overlay %s: %v", path, err))
		}
	}
	return nil
}

// loadEnvFile loads .env values into the process environment. Missing or
// unparsable files are skipped; the YAML and environment layers remain
// authoritative.
func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	_ = godotenv.Load()
}
