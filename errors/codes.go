package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Host-capability errors
const (
	// ErrCodeLaunchFailed indicates a child process could not be created.
	ErrCodeLaunchFailed ErrorCode = "LAUNCH_FAILED"
	// ErrCodeResolutionFailed indicates an executable name was not found
	// on the system search path.
	ErrCodeResolutionFailed ErrorCode = "RESOLUTION_FAILED"
	// ErrCodeFilesystem indicates a filesystem operation failed.
	ErrCodeFilesystem ErrorCode = "FILESYSTEM_ERROR"
	// ErrCodePath indicates a path could not be expanded or normalized.
	ErrCodePath ErrorCode = "PATH_ERROR"
	// ErrCodeTag indicates a file-tag read or write failed.
	ErrCodeTag ErrorCode = "TAG_ERROR"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Authentication errors
const (
	// ErrCodeUnauthorized indicates the request is unauthorized.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInvalidToken indicates the authentication token is invalid.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeFilesystem: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
