package scans

import (
	"errors"
	"net/http"
)

// Domain errors for scan operations.
var (
	ErrNotFound        = errors.New("scan not found")
	ErrDuplicate       = errors.New("scan already exists")
	ErrInvalidRequest  = errors.New("invalid request body")
	ErrInvalidFile     = errors.New("invalid file")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrUnsupportedType = errors.New("file is not a supported image type")
	ErrClassifyFailed  = errors.New("vision classification failed")
)

// MapHTTPStatus maps scan domain errors to HTTP status codes. Provider
// failures map to 502 since the fault lies upstream of this service.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidFile),
		errors.Is(err, ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, ErrClassifyFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
