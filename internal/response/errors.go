package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired     ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid      ErrCode = "TOKEN_INVALID"
	ErrTokenExpired      ErrCode = "TOKEN_EXPIRED"
	ErrTokenRevoked      ErrCode = "TOKEN_REVOKED"
	ErrSessionSuperseded ErrCode = "SESSION_SUPERSEDED"
	ErrUnknownRole       ErrCode = "UNKNOWN_ROLE"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"
	ErrInvalidPermission ErrCode = "INVALID_PERMISSION"
	ErrInvalidRole       ErrCode = "INVALID_ROLE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid."
	case ErrTokenExpired:
		return "Authentication token has expired. Please sign in again."
	case ErrTokenRevoked:
		return "This session has been terminated. Please sign in again."
	case ErrSessionSuperseded:
		return "You signed in on another device. This session is no longer valid."
	case ErrUnknownRole:
		return "The token carries an unrecognized role."
	case ErrForbidden:
		return "You are not allowed to access this resource."
	case ErrPermissionDenied:
		return "You do not have permission to perform this action."
	case ErrValidation:
		return "The request payload failed validation."
	case ErrInvalidPayload:
		return "The request payload could not be parsed."
	case ErrInvalidPermission:
		return "Unknown permission key."
	case ErrInvalidRole:
		return "Unknown role."
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrRateLimitExceeded:
		return "Too many requests. Please slow down."
	case ErrInternal:
		return "An internal error occurred. Please try again later."
	default:
		return "Unknown error."
	}
}
