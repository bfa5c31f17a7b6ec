// Package logger provides structured logging for the gochat services
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("auth-service").WithComponent("issuer")
//	log.Info("tokens issued", logger.Fields("kind", "auth"))
package logger
