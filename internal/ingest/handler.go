package ingest

import (
	"log/slog"
	"net/http"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/handlers"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/routes"
)

// Handler provides HTTP endpoints for ingest operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "ingest"),
	}
}

// Routes returns the route group definition for ingest endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/ingest",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/run", Handler: h.Run},
		},
	}
}

// Run triggers an ingest pull across all configured species and returns the
// run report.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.sys.Run(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
