package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorResponse is the wire shape every hostd endpoint returns on failure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the failure details. Details is operation-specific:
// the missing field, the unresolvable name, the offending path.
type ErrorBody struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Retryable bool                   `json:"retryable"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// ToResponse converts an AppError into its wire shape.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:      e.Code,
			Message:   e.Message,
			Retryable: e.Retryable,
			Details:   e.Details,
		},
	}
}

// ResponseFor maps any error to a wire response and HTTP status. An
// AppError anywhere in the chain supplies both; everything else is
// reported as an opaque internal error.
func ResponseFor(err error) (ErrorResponse, int) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.ToResponse(), appErr.HTTPStatus
	}
	return Internal(err).ToResponse(), http.StatusInternalServerError
}

// AsAppError unwraps err to an AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether err has an AppError in its chain.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}
