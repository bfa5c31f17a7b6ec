// Package validation provides struct validation for configuration and
// request payloads using go-playground/validator.
//
// Field names in error messages are reported in snake_case so they match
// the mapstructure/yaml tags used by configuration files.
//
//	type Creds struct {
//	    Email    string `validate:"required,email"`
//	    Password string `validate:"required,min=10"`
//	}
//	if err := validation.Validate(creds); err != nil { ... }
package validation
