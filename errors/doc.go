// Package errors provides structured error handling for the gochat
// services.
//
// Errors carry a machine-readable code, a human-readable message, and a
// recommended HTTP status. The auth subsystem returns these typed errors
// to its calling controller; translating them into responses stays a
// controller concern, the error only records the recommended status.
//
//	if errors.HasCode(err, errors.ErrCodeInvalidHashFormat) {
//	    log.Warn("stored credential is corrupt") // data-integrity signal
//	}
package errors
