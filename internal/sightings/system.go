package sightings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/pagination"
)

// System defines the public contract for sighting domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Sighting], error)

	Find(ctx context.Context, id uuid.UUID) (*Sighting, error)
	Create(ctx context.Context, cmd CreateCommand) (*Sighting, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Collect returns all sightings of the given species observed within
	// [from, to], ordered by observation date. Used by the export pipeline.
	Collect(ctx context.Context, species []string, from, to time.Time) ([]Sighting, error)
}
