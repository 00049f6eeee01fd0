// Package exports builds GeoJSON feature collections from registered
// sightings and publishes them to blob storage. The default window is the
// trailing four weeks, matching the cadence the styled layer is refreshed on.
package exports

import (
	"context"
	"io"
	"time"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/storage"
)

// Collector provides the sightings to export. sightings.System satisfies this.
type Collector interface {
	Collect(ctx context.Context, species []string, from, to time.Time) ([]sightings.Sighting, error)
}

// Store is the blob storage surface exports use. storage.System satisfies this.
type Store interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]storage.BlobInfo, error)
}

// Export describes one published GeoJSON file.
type Export struct {
	Key          string    `json:"key"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	FeatureCount int       `json:"feature_count"`
	SizeBytes    int64     `json:"size_bytes"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// System defines the public contract for export operations.
type System interface {
	Handler() *Handler

	// Run builds and publishes an export covering [from, to]. Zero times
	// select the default trailing window.
	Run(ctx context.Context, from, to time.Time) (*Export, error)

	List(ctx context.Context) ([]storage.BlobInfo, error)
	Download(ctx context.Context, name string) (io.ReadCloser, error)
}
