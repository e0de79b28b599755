package adapter

import "errors"

var (
	// ErrUploadFailed wraps transport-level failures of the registration
	// upload (DNS, refused connection, timeout, cancelled context).
	ErrUploadFailed = errors.New("upload failed")

	// ErrMalformedResponse is returned when the response body is not a
	// single valid JSON document.
	ErrMalformedResponse = errors.New("malformed registration response")

	// ErrInvalidEndpoint is returned when the endpoint URL cannot be built.
	ErrInvalidEndpoint = errors.New("invalid registration endpoint")
)

// Status errors describe non-2xx answers of the registration receiver.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
