package catalogsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes written by the catalog service.
const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeConflict          = "conflict"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeDependency        = "dependency_error"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidGrant      = "invalid_grant"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// Sentinels for errors.Is against an *APIError.
var (
	ErrValidation   = errors.New("catalogsdk: validation error")
	ErrConflict     = errors.New("catalogsdk: conflict")
	ErrNotFound     = errors.New("catalogsdk: not found")
	ErrDependency   = errors.New("catalogsdk: dependency error")
	ErrUnauthorized = errors.New("catalogsdk: unauthorized")
	ErrForbidden    = errors.New("catalogsdk: forbidden")
	ErrRateLimited  = errors.New("catalogsdk: rate limited")
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// Is maps the response onto the package sentinels so callers can write
// errors.Is(err, catalogsdk.ErrConflict).
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == ErrorCodeValidation || e.Code == ErrorCodeInvalidRequest
	case ErrConflict:
		return e.Code == ErrorCodeConflict
	case ErrNotFound:
		return e.Code == ErrorCodeNotFound
	case ErrDependency:
		return e.Code == ErrorCodeDependency
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// parseErrorResponse turns a non-2xx body into an *APIError. Bodies that
// are not ours (proxies, panics) still produce one with a generic code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
