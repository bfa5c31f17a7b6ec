// Package config loads and validates the gochat service configuration.
//
// Sources are layered: an optional .env file first (godotenv), then the
// base YAML config file, then an optional <environment>.yml overlay
// (selected by LoaderOptions.Environment or GOCHAT_ENV) and local.yml
// overrides next to it, then GOCHAT_* environment variable overrides with
// "__" as the section separator:
//
//	auth:
//	  secret: "..."        # overridden by GOCHAT_AUTH__SECRET
//	  access_expiry_hours: 1
//
// A missing or incomplete auth section is startup-fatal: Load refuses to
// return a configuration the auth subsystem cannot operate on. The loaded
// AppConfig is immutable for the process lifetime and shared read-only.
package config
