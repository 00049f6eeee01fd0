package exports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/handlers"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/routes"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/storage"
)

// ErrInvalidWindow indicates an unparseable or inverted export window.
var ErrInvalidWindow = errors.New("invalid export window")

// Handler provides HTTP endpoints for export operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// RunRequest carries an optional explicit export window. Dates accept
// RFC 3339 timestamps or plain YYYY-MM-DD values.
type RunRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "exports"),
	}
}

// Routes returns the route group definition for export endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{name}", Handler: h.Download},
			{Method: "POST", Pattern: "/run", Handler: h.Run},
		},
	}
}

// Run builds and publishes an export. An empty body selects the default
// trailing window.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidWindow)
		return
	}

	from, to, err := parseWindow(req)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	export, err := h.sys.Run(r.Context(), from, to)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, export)
}

// List returns the published export blobs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blobs, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, blobs)
}

// Download streams a published export by filename.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := h.sys.Download(r.Context(), name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", geoJSONMimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("streaming export download failed", "name", name, "error", err)
	}
}

func parseWindow(req RunRequest) (time.Time, time.Time, error) {
	from, err := parseDate(req.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	to, err := parseDate(req.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to precedes from", ErrInvalidWindow)
	}

	return from, to, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
