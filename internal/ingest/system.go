// Package ingest pulls recent observations from the eBird API and registers
// them as sightings. Each configured species is pulled concurrently;
// observations already on record are counted as skipped rather than errors.
package ingest

import (
	"context"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/ebird"
)

// Source provides recent observations for a species within a region.
// *ebird.Client satisfies this.
type Source interface {
	RecentSpeciesObservations(ctx context.Context, regionCode, speciesCode string) ([]ebird.Observation, error)
}

// Registry accepts new sighting records. sightings.System satisfies this.
type Registry interface {
	Create(ctx context.Context, cmd sightings.CreateCommand) (*sightings.Sighting, error)
}

// System defines the public contract for ingest operations.
type System interface {
	Handler() *Handler
	Run(ctx context.Context) (*Report, error)
}
