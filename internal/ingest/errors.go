package ingest

import (
	"errors"
	"net/http"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/ebird"
)

// ErrRunFailed indicates an ingest run did not complete.
var ErrRunFailed = errors.New("ingest run failed")

// MapHTTPStatus maps ingest errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ebird.ErrUnauthorized) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ebird.ErrUnknownRegion) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ebird.ErrRequestFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
