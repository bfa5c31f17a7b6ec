package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Credential errors
const (
	// ErrCodeConfiguration indicates missing or invalid auth configuration.
	// Fatal at process startup; the subsystem refuses to operate without it.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeHashing indicates an opaque failure from the hashing primitive.
	// Callers map it to a generic server fault; internals never reach the client.
	ErrCodeHashing ErrorCode = "HASHING_ERROR"
	// ErrCodeInvalidHashFormat indicates a malformed stored hash during
	// verification. A verification failure for the user, a data-integrity
	// signal for operators.
	ErrCodeInvalidHashFormat ErrorCode = "INVALID_HASH_FORMAT"
	// ErrCodeInvalidTokenKind indicates an unsupported token kind passed by
	// the caller. A caller-side defect, fatal to the request, never retried.
	ErrCodeInvalidTokenKind ErrorCode = "INVALID_TOKEN_KIND"
	// ErrCodeSigning indicates a failure while signing a token.
	ErrCodeSigning ErrorCode = "SIGNING_ERROR"
)

// Request errors
const (
	// ErrCodeUnauthorized indicates the request is unauthorized.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeCanceled indicates the request was canceled before the
	// operation completed.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
