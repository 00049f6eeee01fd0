package exports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/config"
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/geojson"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/storage"
)

const (
	keyPrefix       = "exports/"
	keyDateLayout   = "2006_01_02"
	geoJSONMimeType = "application/geo+json"

	// defaultWindow is the trailing period an export covers when the caller
	// does not specify one.
	defaultWindow = 4 * 7 * 24 * time.Hour
)

type exporter struct {
	collector Collector
	store     Store
	cfg       config.IngestConfig
	logger    *slog.Logger
}

// New creates an exporter implementing the System interface.
func New(
	collector Collector,
	store Store,
	cfg config.IngestConfig,
	logger *slog.Logger,
) System {
	return &exporter{
		collector: collector,
		store:     store,
		cfg:       cfg,
		logger:    logger.With("system", "exports"),
	}
}

func (e *exporter) Handler() *Handler {
	return NewHandler(e, e.logger)
}

func (e *exporter) Run(ctx context.Context, from, to time.Time) (*Export, error) {
	from, to = normalizeWindow(from, to)

	items, err := e.collector.Collect(ctx, e.cfg.Codes(), from, to)
	if err != nil {
		return nil, fmt.Errorf("collect sightings: %w", err)
	}

	collection := buildCollection(items)

	var buf bytes.Buffer
	if err := collection.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode feature collection: %w", err)
	}

	key := exportKey(from, to)
	if err := e.store.Upload(ctx, key, bytes.NewReader(buf.Bytes()), geoJSONMimeType); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	export := &Export{
		Key:          key,
		From:         from,
		To:           to,
		FeatureCount: len(collection.Features),
		SizeBytes:    int64(buf.Len()),
		GeneratedAt:  time.Now().UTC(),
	}

	e.logger.Info(
		"export published",
		"key", export.Key,
		"features", export.FeatureCount,
		"bytes", export.SizeBytes,
	)
	return export, nil
}

func (e *exporter) List(ctx context.Context) ([]storage.BlobInfo, error) {
	blobs, err := e.store.List(ctx, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return blobs, nil
}

func (e *exporter) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	body, err := e.store.Download(ctx, keyPrefix+name)
	if err != nil {
		return nil, fmt.Errorf("download export %s: %w", name, err)
	}
	return body, nil
}

// normalizeWindow fills in missing bounds: a zero to means now, a zero from
// means the default trailing window before to.
func normalizeWindow(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	return from, to
}

func buildCollection(items []sightings.Sighting) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for i := range items {
		collection.Append(items[i].Feature())
	}
	return collection
}

func exportKey(from, to time.Time) string {
	return fmt.Sprintf(
		"%smodu_x_mall_%s__%s.geojson",
		keyPrefix,
		from.Format(keyDateLayout),
		to.Format(keyDateLayout),
	)
}
