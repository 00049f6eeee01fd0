package styles_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/styles"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/pagination"
)

type mockSystem struct {
	listFn     func(ctx context.Context, page pagination.PageRequest, filters styles.Filters) (*pagination.PageResult[styles.Style], error)
	findFn     func(ctx context.Context, id uuid.UUID) (*styles.Style, error)
	createFn   func(ctx context.Context, cmd styles.CreateCommand) (*styles.UploadResult, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	downloadFn func(ctx context.Context, id uuid.UUID) (io.ReadCloser, *styles.Style, error)
}

func (m *mockSystem) Handler(maxUploadSize int64) *styles.Handler {
	return styles.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, maxUploadSize)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters styles.Filters) (*pagination.PageResult[styles.Style], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*styles.Style, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd styles.CreateCommand) (*styles.UploadResult, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockSystem) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *styles.Style, error) {
	return m.downloadFn(ctx, id)
}

func newTestHandler(sys *mockSystem) *styles.Handler {
	return styles.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
		50*1024*1024,
	)
}

func setupMux(h *styles.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleStyle() styles.Style {
	return styles.Style{
		ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		LayerName:    "modu_x_mall",
		Filename:     "modu_sightings.qml",
		GeometryType: "point",
		RuleCount:    5,
		FieldCount:   8,
		Temporal:     true,
		SizeBytes:    2048,
		StorageKey:   "styles/550e8400-e29b-41d4-a716-446655440000/modu_sightings.qml",
		UploadedAt:   time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandlerList(t *testing.T) {
	st := sampleStyle()
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, _ styles.Filters) (*pagination.PageResult[styles.Style], error) {
			result := pagination.NewPageResult([]styles.Style{st}, 1, 1, 20)
			return &result, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("returns paginated list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var result pagination.PageResult[styles.Style]
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
		if len(result.Data) != 1 {
			t.Fatalf("data length = %d, want 1", len(result.Data))
		}
		if result.Data[0].ID != st.ID {
			t.Errorf("id = %v, want %v", result.Data[0].ID, st.ID)
		}
	})

	t.Run("passes query filters", func(t *testing.T) {
		var captured styles.Filters
		sys.listFn = func(_ context.Context, _ pagination.PageRequest, f styles.Filters) (*pagination.PageResult[styles.Style], error) {
			captured = f
			result := pagination.NewPageResult([]styles.Style{}, 0, 1, 20)
			return &result, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles?layer_name=modu&geometry_type=point", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if captured.LayerName == nil || *captured.LayerName != "modu" {
			t.Errorf("layer_name filter = %v, want modu", captured.LayerName)
		}
		if captured.GeometryType == nil || *captured.GeometryType != "point" {
			t.Errorf("geometry_type filter = %v, want point", captured.GeometryType)
		}
	})
}

func TestHandlerFind(t *testing.T) {
	st := sampleStyle()

	t.Run("returns style by id", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(_ context.Context, id uuid.UUID) (*styles.Style, error) {
				if id != st.ID {
					return nil, styles.ErrNotFound
				}
				return &st, nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles/"+st.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got styles.Style
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != st.ID {
			t.Errorf("id = %v, want %v", got.ID, st.ID)
		}
	})

	t.Run("invalid uuid returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("not found returns 404", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(_ context.Context, _ uuid.UUID) (*styles.Style, error) {
				return nil, styles.ErrNotFound
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles/"+uuid.New().String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerUpload(t *testing.T) {
	st := sampleStyle()

	t.Run("registers style from multipart form", func(t *testing.T) {
		var capturedCmd styles.CreateCommand
		sys := &mockSystem{
			createFn: func(_ context.Context, cmd styles.CreateCommand) (*styles.UploadResult, error) {
				capturedCmd = cmd
				return &styles.UploadResult{Style: &st}, nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		body, contentType := createMultipartForm(t, "modu_sightings.qml", []byte("<qgis/>"), "modu_x_mall")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/styles", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if capturedCmd.Filename != "modu_sightings.qml" {
			t.Errorf("filename = %q, want modu_sightings.qml", capturedCmd.Filename)
		}
		if capturedCmd.LayerName != "modu_x_mall" {
			t.Errorf("layer_name = %q, want modu_x_mall", capturedCmd.LayerName)
		}
		if string(capturedCmd.Data) != "<qgis/>" {
			t.Errorf("data = %q, want raw file bytes", capturedCmd.Data)
		}
	})

	t.Run("missing layer_name returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(newTestHandler(sys))

		body, contentType := createMultipartForm(t, "modu_sightings.qml", []byte("<qgis/>"), "")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/styles", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing file returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(newTestHandler(sys))

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("layer_name", "modu_x_mall")
		writer.Close()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/styles", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid document returns 400", func(t *testing.T) {
		sys := &mockSystem{
			createFn: func(_ context.Context, _ styles.CreateCommand) (*styles.UploadResult, error) {
				return nil, styles.ErrInvalidFile
			},
		}
		mux := setupMux(newTestHandler(sys))

		body, contentType := createMultipartForm(t, "broken.qml", []byte("not xml"), "modu_x_mall")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/styles", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("duplicate returns 409", func(t *testing.T) {
		sys := &mockSystem{
			createFn: func(_ context.Context, _ styles.CreateCommand) (*styles.UploadResult, error) {
				return nil, styles.ErrDuplicate
			},
		}
		mux := setupMux(newTestHandler(sys))

		body, contentType := createMultipartForm(t, "modu_sightings.qml", []byte("<qgis/>"), "modu_x_mall")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/styles", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})
}

func TestHandlerDownload(t *testing.T) {
	st := sampleStyle()

	t.Run("streams stored document", func(t *testing.T) {
		sys := &mockSystem{
			downloadFn: func(_ context.Context, _ uuid.UUID) (io.ReadCloser, *styles.Style, error) {
				return io.NopCloser(strings.NewReader("<qgis/>")), &st, nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles/"+st.ID.String()+"/download", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/xml" {
			t.Errorf("content type = %q, want application/xml", got)
		}
		if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, st.Filename) {
			t.Errorf("content disposition = %q, want filename %s", got, st.Filename)
		}
		if rec.Body.String() != "<qgis/>" {
			t.Errorf("body = %q, want stored bytes", rec.Body.String())
		}
	})

	t.Run("not found returns 404", func(t *testing.T) {
		sys := &mockSystem{
			downloadFn: func(_ context.Context, _ uuid.UUID) (io.ReadCloser, *styles.Style, error) {
				return nil, nil, styles.ErrNotFound
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/styles/"+uuid.New().String()+"/download", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	styleID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	t.Run("deletes style", func(t *testing.T) {
		var capturedID uuid.UUID
		sys := &mockSystem{
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				capturedID = id
				return nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/styles/"+styleID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if capturedID != styleID {
			t.Errorf("id = %v, want %v", capturedID, styleID)
		}
	})

	t.Run("not found returns 404", func(t *testing.T) {
		sys := &mockSystem{
			deleteFn: func(_ context.Context, _ uuid.UUID) error {
				return styles.ErrNotFound
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/styles/"+uuid.New().String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerRoutes(t *testing.T) {
	sys := &mockSystem{}
	h := newTestHandler(sys)
	group := h.Routes()

	if group.Prefix != "/styles" {
		t.Errorf("prefix = %q, want /styles", group.Prefix)
	}

	want := []struct {
		method  string
		pattern string
	}{
		{"GET", ""},
		{"GET", "/{id}"},
		{"GET", "/{id}/download"},
		{"POST", ""},
		{"POST", "/search"},
		{"DELETE", "/{id}"},
	}

	if len(group.Routes) != len(want) {
		t.Fatalf("route count = %d, want %d", len(group.Routes), len(want))
	}

	for i, w := range want {
		r := group.Routes[i]
		if r.Method != w.method || r.Pattern != w.pattern {
			t.Errorf("route[%d] = %s %s, want %s %s", i, r.Method, r.Pattern, w.method, w.pattern)
		}
	}
}

func createMultipartForm(t *testing.T, filename string, content []byte, layerName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if len(content) > 0 {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(content)
	}

	if layerName != "" {
		writer.WriteField("layer_name", layerName)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}
