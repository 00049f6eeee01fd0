package sightings

import (
	"errors"
	"net/http"
)

// Domain errors for sighting operations.
var (
	ErrNotFound  = errors.New("sighting not found")
	ErrDuplicate = errors.New("sighting already registered")
	ErrInvalid   = errors.New("invalid sighting")
)

// MapHTTPStatus maps sighting domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
