package olog

import (
	"errors"
	"net/http"

	"github.com/sligara7/phoebus-golog/internal/common/apperrors"
	"github.com/sligara7/phoebus-golog/internal/common/httpclient"
)

// Error taxonomy of the client. Configuration errors cover resolving and
// loading client settings, validation errors cover caller mistakes caught
// before any network call, and transport errors cover every non-2xx response
// or network fault. Callers can test categories with errors.Is and inspect
// HTTP status codes through StatusCode.
var (
	// ErrConfig is the root of all configuration failures.
	ErrConfig = apperrors.New("configuration error")

	// ErrConfigNotFound indicates the configuration file path does not exist.
	ErrConfigNotFound = ErrConfig.New("configuration file not found")

	// ErrConfigParse indicates the configuration file content is malformed.
	ErrConfigParse = ErrConfig.New("unable to parse configuration file")

	// ErrConfigInvalid indicates the resolved configuration failed validation.
	ErrConfigInvalid = ErrConfig.New("invalid configuration")

	// ErrValidation indicates a caller-facing failure detected before any
	// network call was issued.
	ErrValidation = apperrors.New("validation error")

	// ErrTransport indicates a failed HTTP exchange with the Olog service.
	// The wrapped cause carries the underlying *httpclient.HTTPError or
	// network fault.
	ErrTransport = apperrors.New("transport error")
)

// transportError wraps a transport-layer failure with the attempted operation
// and preserves the HTTP status code when one is available.
func transportError(op string, err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return ErrTransport.MsgErr(op+": "+httpErr.Message, err).SetStatusCode(httpErr.StatusCode)
	}
	return ErrTransport.MsgErr(op+": "+err.Error(), err)
}

// StatusCode returns the HTTP status code carried by err, or 0 when err does
// not originate from an HTTP response.
func StatusCode(err error) int {
	var appErr apperrors.Error
	if errors.As(err, &appErr) && appErr.StatusCode() != 0 {
		return appErr.StatusCode()
	}
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err corresponds to an HTTP 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsConflict reports whether err corresponds to an HTTP 409 response.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// IsServerError reports whether err corresponds to an HTTP 5xx response.
func IsServerError(err error) bool {
	return StatusCode(err) >= 500
}
