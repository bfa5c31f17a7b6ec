// Package auth implements credential issuance and verification for the
// gochat backend.
//
// Focused pieces:
//
//   - Issuer: builds and signs access/refresh/one-time-password JWTs
//   - CookieDeriver: derives the opaque auxiliary cookie value
//   - Deployer: attaches the auth cookie to a response with its
//     security attributes
//   - Verifier: password verification with a fixed-cost path for
//     unknown accounts
//   - auth/password: argon2id hashing behind a bounded worker pool
//
// The calling controller authenticates a user, asks the Issuer for a token
// set, serializes the tokens into the response body, and hands the cookie
// value to the Deployer. HTTP status mapping for the returned errors stays
// with the controller.
//
// Config follows the usual shape: mapstructure tags, ApplyDefaults(),
// Validate(). The config is loaded once at startup and shared read-only by
// every concurrent request; nothing in this package mutates it.
//
//	auth:
//	  secret: "..."
//	  access_expiry_hours: 1
//	  refresh_expiry_hours: 24
//	  otp_expiry_minutes: 5
package auth
